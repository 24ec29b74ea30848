package util

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var hexTokenRegex = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestGenerateShareToken_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// 任意次生成都是 32 位小写十六进制，URL 安全
	properties.Property("token is 32 lowercase hex chars", prop.ForAll(
		func(_ int) bool {
			token, err := GenerateShareToken()
			if err != nil {
				return false
			}
			return hexTokenRegex.MatchString(token)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestGenerateShareToken_PairwiseDistinct(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		token, err := GenerateShareToken()
		if err != nil {
			t.Fatal(err)
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = struct{}{}
	}
}

func TestGetRandomString(t *testing.T) {
	s := GetRandomString(32)
	if len(s) != 32 {
		t.Errorf("GetRandomString(32) length = %d", len(s))
	}
}
