package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// SignatureVersion prefixes every notice signature so the bridge can tell
// schemes apart if the signing format ever changes.
const SignatureVersion = "v1="

// HMACSignatureService signs outbound notices with HMAC-SHA256.
type HMACSignatureService struct{}

func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign returns "v1=" followed by the lowercase hex HMAC of payload.
func (s *HMACSignatureService) Sign(secret string, payload string) string {
	return SignatureVersion + hex.EncodeToString(s.mac(secret, payload))
}

// Verify reports whether signature was produced by Sign for this secret and
// payload. The comparison is constant time.
func (s *HMACSignatureService) Verify(secret string, payload string, signature string) bool {
	encoded, ok := strings.CutPrefix(signature, SignatureVersion)
	if !ok {
		return false
	}
	got, err := hex.DecodeString(encoded)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.mac(secret, payload))
}

func (s *HMACSignatureService) mac(secret, payload string) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return h.Sum(nil)
}

// SigningPayload is what the bridge recomputes: "<unix seconds>.<body>".
func SigningPayload(timestamp int64, body []byte) string {
	return strconv.FormatInt(timestamp, 10) + "." + string(body)
}
