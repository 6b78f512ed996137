package letter

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"timecapsule/internal/domain"
)

var errBadLink = errors.New("malformed share link")

// ShareLink builds <base>/letters/<id>#<client share>. The share lives in
// the fragment so browsers never send it to the server.
func ShareLink(base string, id domain.LetterID, clientShare domain.Share) string {
	return strings.TrimRight(base, "/") + "/letters/" + id.String() + "#" + clientShare.String()
}

// ParseShareLink extracts the letter id and client share from a link made
// by ShareLink.
func ParseShareLink(link string) (domain.LetterID, domain.Share, error) {
	u, err := url.Parse(link)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %v", errBadLink, err)
	}
	if u.Fragment == "" {
		return uuid.Nil, "", fmt.Errorf("%w: missing client share", errBadLink)
	}
	dir, last := path.Split(strings.TrimRight(u.Path, "/"))
	if path.Base(dir) != "letters" {
		return uuid.Nil, "", fmt.Errorf("%w: %q is not a letter path", errBadLink, u.Path)
	}
	id, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %v", errBadLink, err)
	}
	return id, domain.Share(u.Fragment), nil
}
