package service

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const digestLen = 8

// Prefix builds the shared code prefix of a batch from the customer name and the issue year.
func Prefix(name string, year int) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), "-")) + "-" + strconv.Itoa(year)
}

type CodeGenerator struct {
	now func() time.Time
}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{now: time.Now}
}

// Code returns prefix-HEX8 where HEX8 is taken from sha1(prefix-index-nanos).
func (g *CodeGenerator) Code(prefix string, index int) string {
	src := prefix + "-" + strconv.Itoa(index) + "-" + strconv.FormatInt(g.now().UnixNano(), 10)
	sum := sha1.Sum([]byte(src))
	return prefix + "-" + strings.ToUpper(hex.EncodeToString(sum[:])[:digestLen])
}

// Generate returns n distinct codes sharing prefix.
func (g *CodeGenerator) Generate(prefix string, n int) []string {
	codes := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for i := 0; len(codes) < n; i++ {
		code := g.Code(prefix, i)
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}
