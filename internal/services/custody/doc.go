// Package custody holds server shares until their letters may be opened.
//
// Deposit records a server share together with its unlock time; Release
// hands it back once the clock has reached that time and refuses before.
// Records are kept in a domain.ShareStore under the custodian passphrase.
package custody
