package rdio

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	oauthVersion         = "1.0"
	oauthSignatureMethod = "HMAC-SHA1"
)

// Signer produces OAuth 1.0a HMAC-SHA1 Authorization headers.
//
// Token and TokenSecret are optional; without them requests are signed
// with the consumer credentials only (two-legged).
type Signer struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string

	now   func() time.Time
	nonce func() string
}

// NewSigner returns a Signer for the given credentials.
func NewSigner(consumerKey, consumerSecret, token, tokenSecret string) *Signer {
	return &Signer{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		Token:          token,
		TokenSecret:    tokenSecret,
	}
}

// Authorization returns the value of the Authorization header for a request
// with the given method, endpoint and form body. A fresh nonce and timestamp
// are used on every call.
func (s *Signer) Authorization(method, endpoint string, form url.Values) (string, error) {
	oauth := s.oauthParams()

	base, err := signatureBase(method, endpoint, oauth, form)
	if err != nil {
		return "", err
	}
	oauth["oauth_signature"] = s.sign(base)

	keys := make([]string, 0, len(oauth))
	for k := range oauth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = percentEncode(k) + `="` + percentEncode(oauth[k]) + `"`
	}
	return "OAuth " + strings.Join(parts, ", "), nil
}

func (s *Signer) oauthParams() map[string]string {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	nonce := func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") }
	if s.nonce != nil {
		nonce = s.nonce
	}

	p := map[string]string{
		"oauth_consumer_key":     s.ConsumerKey,
		"oauth_nonce":            nonce(),
		"oauth_signature_method": oauthSignatureMethod,
		"oauth_timestamp":        strconv.FormatInt(now().Unix(), 10),
		"oauth_version":          oauthVersion,
	}
	if s.Token != "" {
		p["oauth_token"] = s.Token
	}
	return p
}

// sign computes the base64 HMAC-SHA1 of the signature base string.
func (s *Signer) sign(base string) string {
	key := percentEncode(s.ConsumerSecret) + "&" + percentEncode(s.TokenSecret)
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// signatureBase builds the RFC 5849 section 3.4.1 signature base string.
func signatureBase(method, endpoint string, oauth map[string]string, form url.Values) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}

	type pair struct{ k, v string }
	var pairs []pair
	add := func(k, v string) {
		pairs = append(pairs, pair{percentEncode(k), percentEncode(v)})
	}
	for k, v := range oauth {
		add(k, v)
	}
	for k, vs := range form {
		for _, v := range vs {
			add(k, v)
		}
	}
	for k, vs := range u.Query() {
		for _, v := range vs {
			add(k, v)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].k != pairs[j].k {
			return pairs[i].k < pairs[j].k
		}
		return pairs[i].v < pairs[j].v
	})

	normalized := make([]string, len(pairs))
	for i, p := range pairs {
		normalized[i] = p.k + "=" + p.v
	}

	return strings.ToUpper(method) + "&" +
		percentEncode(baseURI(u)) + "&" +
		percentEncode(strings.Join(normalized, "&")), nil
}

// baseURI lower-cases scheme and host, drops default ports, the query and
// the fragment.
func baseURI(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" {
		if !(scheme == "http" && port == "80") && !(scheme == "https" && port == "443") {
			host += ":" + port
		}
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path
}

// percentEncode escapes everything except the RFC 3986 unreserved set.
func percentEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
