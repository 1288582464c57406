package auth

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/restkit-go/restkit/hashing"
	"github.com/restkit-go/restkit/restclient"
)

// Digest answers Digest challenges per RFC 2617, one retry round per 401.
//
// The nonce counter is scoped to the instance and advances once per
// processed challenge header; reusing one Digest value across requests is
// what lets a server detect replay. Increments are atomic, so a Digest may
// serve concurrent requests.
type Digest struct {
	Username string
	Password string

	nc     atomic.Uint32
	cnonce func() string
	hashes *hashing.Provider
}

// compile-time assertion
var _ restclient.Authenticator = (*Digest)(nil)

// NewDigest creates a Digest authenticator with a fresh nonce counter.
func NewDigest(username, password string) *Digest {
	return &Digest{
		Username: username,
		Password: password,
		cnonce:   newCNonce,
		hashes:   hashing.NewProvider(),
	}
}

// newCNonce returns the first 8 characters of a fresh UUID.
func newCNonce() string {
	return uuid.NewString()[:8]
}

// Matches reports whether resp carries a Digest challenge.
func (d *Digest) Matches(resp *restclient.Response) bool {
	return hasChallenge(resp, "Digest")
}

// Apply answers every Digest challenge on resp, leaving the last computed
// Authorization header on req. The counter advances once per challenge,
// not once per request.
func (d *Digest) Apply(_ context.Context, req *restclient.Request, resp *restclient.Response) error {
	for _, ch := range challenges(resp, "Digest") {
		header, err := d.answer(req, parseChallenge(ch))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", header)
	}
	return nil
}

// answer computes the Authorization header for a parsed challenge.
func (d *Digest) answer(req *restclient.Request, params map[string]string) (string, error) {
	realm, ok := params["realm"]
	if !ok {
		return "", restclient.NewChallengeError("digest challenge missing realm")
	}
	nonce, ok := params["nonce"]
	if !ok {
		return "", restclient.NewChallengeError("digest challenge missing nonce")
	}
	qop := selectQOP(params["qop"])
	cnonce := d.cnonce()
	nc := d.nc.Add(1)
	uri := req.RequestURI()

	ha1, err := d.ha1(params["algorithm"], realm, nonce, cnonce)
	if err != nil {
		return "", err
	}
	ha2, err := d.ha2(qop, req.Method, uri, req.Body)
	if err != nil {
		return "", err
	}

	var response string
	if qop == "" {
		response, err = d.hashes.HexString(hashing.MD5, ha1+":"+nonce+":"+ha2)
	} else {
		response, err = d.hashes.HexString(hashing.MD5,
			fmt.Sprintf("%s:%s:%08x:%s:%s:%s", ha1, nonce, nc, cnonce, qop, ha2))
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Digest username="%s", realm="%s", nonce="%s", uri="%s"`,
		d.Username, realm, nonce, uri)
	if opaque := params["opaque"]; opaque != "" {
		fmt.Fprintf(&b, `, opaque="%s"`, opaque)
	}
	if qop != "" {
		fmt.Fprintf(&b, `, qop="%s", nc="%08x", cnonce="%s"`, qop, nc, cnonce)
	}
	fmt.Fprintf(&b, `, response="%s"`, response)
	return b.String(), nil
}

// ha1 hashes the credentials. Only HA1 varies with the algorithm directive;
// the -sess variants fold the nonce pair into a second round. Challenges
// advertising SHA-512 are answered with a SHA-256 digest, matching the
// servers this exchange interoperates with.
func (d *Digest) ha1(algorithm, realm, nonce, cnonce string) (string, error) {
	name := algorithm
	sess := false
	if n, found := strings.CutSuffix(strings.ToUpper(name), "-SESS"); found {
		name = n
		sess = true
	}

	var algo hashing.Algorithm
	switch strings.ToUpper(name) {
	case "", "MD5":
		algo = hashing.MD5
	case "SHA-256", "SHA-512":
		algo = hashing.SHA256
	default:
		return "", restclient.NewChallengeError(fmt.Sprintf("unsupported digest algorithm %q", algorithm))
	}

	secret, err := d.hashes.HexString(algo, d.Username+":"+realm+":"+d.Password)
	if err != nil {
		return "", err
	}
	if sess {
		return d.hashes.HexString(algo, secret+":"+nonce+":"+cnonce)
	}
	return secret, nil
}

// ha2 hashes method and path, plus the body digest under auth-int.
func (d *Digest) ha2(qop, method, uri string, body []byte) (string, error) {
	if qop == "auth-int" {
		bodyHash, err := d.hashes.Hex(hashing.MD5, body)
		if err != nil {
			return "", err
		}
		return d.hashes.HexString(hashing.MD5, method+":"+uri+":"+bodyHash)
	}
	return d.hashes.HexString(hashing.MD5, method+":"+uri)
}

// selectQOP picks the quality-of-protection directive from the challenge
// list: auth when offered, else auth-int, else none.
func selectQOP(list string) string {
	var auth, authInt bool
	for _, directive := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(directive)) {
		case "auth":
			auth = true
		case "auth-int":
			authInt = true
		}
	}
	switch {
	case auth:
		return "auth"
	case authInt:
		return "auth-int"
	default:
		return ""
	}
}
