package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Calculator is an interface for computing content file checksums.
// This abstraction allows for different checksum strategies and algorithms.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
// Normalization:
//  1. Remove XML comments (<!-- -->), leaving CDATA sections untouched
//  2. Drop whitespace-only runs between two tags
//  3. Collapse remaining whitespace to single spaces
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// normalize applies the normalization rules to content.
func (c SHA256) normalize(content string) string {
	cleaned := c.removeComments(content)

	var b strings.Builder
	b.Grow(len(cleaned))

	var last rune
	pendingSpace := false
	for _, r := range cleaned {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace && !(last == '>' && r == '<') {
			b.WriteRune(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
		last = r
	}

	return b.String()
}

type scanState int

const (
	ssNormal scanState = iota
	ssComment
	ssCDATA
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
)

// removeComments removes XML comments while preserving CDATA sections,
// whose content may legitimately contain "<!--".
func (c SHA256) removeComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := ssNormal
	i := 0

	for i < len(content) {
		switch state {
		case ssNormal:
			if strings.HasPrefix(content[i:], commentOpen) {
				state = ssComment
				i += len(commentOpen)
			} else if strings.HasPrefix(content[i:], cdataOpen) {
				state = ssCDATA
				b.WriteString(cdataOpen)
				i += len(cdataOpen)
			} else {
				b.WriteByte(content[i])
				i++
			}

		case ssComment:
			if strings.HasPrefix(content[i:], commentClose) {
				state = ssNormal
				i += len(commentClose)
			} else {
				i++
			}

		case ssCDATA:
			if strings.HasPrefix(content[i:], cdataClose) {
				state = ssNormal
				b.WriteString(cdataClose)
				i += len(cdataClose)
			} else {
				b.WriteByte(content[i])
				i++
			}
		}
	}

	return b.String()
}
