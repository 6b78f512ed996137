package sharing_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timecapsule/internal/crypto"
	"timecapsule/internal/domain"
	"timecapsule/internal/services/sharing"
)

// recordingScheme remembers copies of the parts handed to Combine; the
// originals are wiped once Combine returns.
type recordingScheme struct {
	crypto.Shamir
	got [][]byte
}

func (r *recordingScheme) Combine(parts [][]byte) ([]byte, error) {
	r.got = make([][]byte, len(parts))
	for i, p := range parts {
		r.got[i] = bytes.Clone(p)
	}
	return r.Shamir.Combine(parts)
}

func newKey(t *testing.T) []byte {
	t.Helper()
	k, err := crypto.NewKey()
	require.NoError(t, err)
	return k
}

func splitKey(t *testing.T, svc *sharing.Service, secret []byte) (domain.Share, domain.Share) {
	t.Helper()
	shares, err := svc.Split(secret, 2)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	return shares[0], shares[1]
}

func TestCombine_RecoversSecret(t *testing.T) {
	svc := sharing.New(nil)
	secret := []byte("01234567890123456789012345678901")
	client, server := splitKey(t, svc, secret)

	key, err := svc.Combine(client, server)
	require.NoError(t, err)
	assert.Equal(t, crypto.EncodeURL(secret), key.String())
}

func TestCombine_OrderIndependent(t *testing.T) {
	svc := sharing.New(nil)
	secret, err := crypto.NewKey()
	require.NoError(t, err)
	a, b := splitKey(t, svc, secret)

	ab, err := svc.Combine(a, b)
	require.NoError(t, err)
	ba, err := svc.Combine(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestCombine_AnyPairOfThree(t *testing.T) {
	svc := sharing.New(nil)
	secret := []byte("a letter key of arbitrary length")
	shares, err := svc.Split(secret, 3)
	require.NoError(t, err)

	want := domain.Key(crypto.EncodeURL(secret))
	for i := range shares {
		for j := range shares {
			if i == j {
				continue
			}
			got, err := svc.Combine(shares[i], shares[j])
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestCombine_PassesClientShareFirst(t *testing.T) {
	scheme := &recordingScheme{}
	svc := sharing.New(scheme)
	client, server := splitKey(t, svc, []byte("secret"))

	_, err := svc.Combine(client, server)
	require.NoError(t, err)
	require.Len(t, scheme.got, 2)

	wantClient, err := svc.Decode(client)
	require.NoError(t, err)
	assert.Equal(t, wantClient, scheme.got[0])
}

func TestCombine_SharesFromDifferentSplits(t *testing.T) {
	svc := sharing.New(nil)
	a, _ := splitKey(t, svc, newKey(t))
	_, b := splitKey(t, svc, newKey(t))

	key, err := svc.Combine(a, b)
	require.Error(t, err)
	assert.Empty(t, key)
	assert.True(t, errors.Is(err, domain.ErrCombine))

	var ce *domain.CombineError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "cannot recover key from shares", ce.Error())
}

func TestCombine_DifferentSplitsOfEqualLengthAlwaysRejected(t *testing.T) {
	svc := sharing.New(nil)
	for i := 0; i < 200; i++ {
		client, _ := splitKey(t, svc, newKey(t))
		_, server := splitKey(t, svc, newKey(t))

		_, err := svc.Combine(client, server)
		require.ErrorIs(t, err, domain.ErrCombine, "iteration %d", i)
	}
}

func TestCombine_SameShareTwice(t *testing.T) {
	svc := sharing.New(nil)
	a, _ := splitKey(t, svc, []byte("secret"))

	_, err := svc.Combine(a, a)
	assert.ErrorIs(t, err, domain.ErrCombine)
}

func TestCombine_MissingServerShare(t *testing.T) {
	svc := sharing.New(nil)
	a, _ := splitKey(t, svc, []byte("secret"))

	_, err := svc.Combine(a, "")
	assert.ErrorIs(t, err, domain.ErrCombine)
}

func TestCombine_MalformedShare(t *testing.T) {
	svc := sharing.New(nil)
	a, _ := splitKey(t, svc, []byte("secret"))

	_, err := svc.Combine(a, "not*base64")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.NotErrorIs(t, err, domain.ErrCombine)

	_, err = svc.Combine("x", a)
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestVerify(t *testing.T) {
	svc := sharing.New(nil)
	a, b := splitKey(t, svc, newKey(t))
	c, d := splitKey(t, svc, newKey(t))

	assert.True(t, svc.Verify(a, b))
	assert.True(t, svc.Verify(b, a))
	assert.True(t, svc.Verify(c, d))
	assert.False(t, svc.Verify(a, a))
	assert.False(t, svc.Verify(a, d))
	assert.False(t, svc.Verify(c, b))
	assert.False(t, svc.Verify(a, "!!"))
	assert.False(t, svc.Verify("", ""))
}

func TestSplit_RejectsTooFewShares(t *testing.T) {
	svc := sharing.New(nil)
	_, err := svc.Split([]byte("secret"), 1)
	assert.Error(t, err)
}

func TestSplit_RejectsEmptySecret(t *testing.T) {
	svc := sharing.New(nil)
	_, err := svc.Split(nil, 2)
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	svc := sharing.New(nil)
	assert.Equal(t, domain.Share("_-4"), svc.Encode([]byte{0xFF, 0xEE}))

	b, err := svc.Decode("_-4")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xEE}, b)
}
