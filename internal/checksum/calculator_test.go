package checksum

import (
	"testing"
)

func TestSHA256Calculator_CalculateRaw(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty string",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.CalculateRaw([]byte(tt.content))
			if result != tt.expected {
				t.Errorf("CalculateRaw() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestSHA256Calculator_Raw_DetectsWhitespace(t *testing.T) {
	calc := New()

	a := calc.CalculateRaw([]byte("<para>text</para>"))
	b := calc.CalculateRaw([]byte("<para>text</para>\n"))
	if a == b {
		t.Error("Raw checksum should change when a trailing newline is added")
	}
}

func TestSHA256Calculator_Normalization_WhitespaceInsensitive(t *testing.T) {
	calc := New()

	variations := []string{
		"<document><title>Lab 1</title></document>",
		"<document>\n  <title>Lab 1</title>\n</document>\n",
		"<document>\t<title>Lab  1</title></document>",
		"\r\n<document>\r\n<title>Lab\r\n1</title>\r\n</document>",
	}

	var baseHash string
	for i, content := range variations {
		hash := calc.CalculateNormalized([]byte(content))
		if i == 0 {
			baseHash = hash
		} else if hash != baseHash {
			t.Errorf("Whitespace variation %d produced different hash: %s != %s", i, hash, baseHash)
		}
	}
}

func TestSHA256Calculator_Normalization_CommentRemoval(t *testing.T) {
	calc := New()

	variations := []string{
		"<document><title>Lab 1</title></document>",
		"<!-- header --><document><title>Lab 1</title></document>",
		"<document><!-- a <md:license> note --><title>Lab 1</title></document>",
		"<document>\n<!--\nmulti\nline\n-->\n<title>Lab 1</title></document>",
	}

	var baseHash string
	for i, content := range variations {
		hash := calc.CalculateNormalized([]byte(content))
		if i == 0 {
			baseHash = hash
		} else if hash != baseHash {
			t.Errorf("Comment variation %d produced different hash:\nContent: %s\nHash: %s\nExpected: %s",
				i, content, hash, baseHash)
		}
	}
}

func TestSHA256Calculator_Normalization_Significant(t *testing.T) {
	calc := New()

	tests := []struct {
		name string
		a, b string
	}{
		{"case is significant", "<title>Lab</title>", "<title>LAB</title>"},
		{"words stay separated", "<title>Lab 1</title>", "<title>Lab1</title>"},
		{"text changes", "<md:version>1.1</md:version>", "<md:version>1.2</md:version>"},
		{"cdata is kept", "<code><![CDATA[<!-- x -->]]></code>", "<code><![CDATA[]]></code>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if calc.CalculateNormalized([]byte(tt.a)) == calc.CalculateNormalized([]byte(tt.b)) {
				t.Errorf("Expected different hashes for %q and %q", tt.a, tt.b)
			}
		})
	}
}

func TestSHA256Calculator_normalize(t *testing.T) {
	calc := New()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"  <a>  </a>  ", "<a></a>"},
		{"<a> x  y </a>", "<a> x y </a>"},
		{"<a><!-- c --></a>", "<a></a>"},
		{"<a>x<!-- c -->y</a>", "<a>xy</a>"},
		{"<a><![CDATA[ <!-- kept --> ]]></a>", "<a><![CDATA[ <!-- kept --> ]]></a>"},
		{"<a><!-- unterminated", "<a>"},
	}

	for _, tt := range tests {
		if got := calc.normalize(tt.input); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSHA256Calculator_ConcurrentSafety(t *testing.T) {
	calc := New()
	content := []byte("<document><title>Lab 1</title></document>")
	want := calc.CalculateNormalized(content)

	done := make(chan string, 20)
	for i := 0; i < 20; i++ {
		go func() {
			done <- calc.CalculateNormalized(content)
		}()
	}
	for i := 0; i < 20; i++ {
		if got := <-done; got != want {
			t.Errorf("Concurrent hash mismatch: %s != %s", got, want)
		}
	}
}
