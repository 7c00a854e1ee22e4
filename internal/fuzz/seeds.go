package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

// languageSeeds cover every lexical class in both dialects.
var languageSeeds = []string{
	"",
	"let x = 42;\nend\n",
	"0x1F 0o17 0b1010 0d99 0h7f 0q17 1_000_000",
	"1.5 .5e3 2.5e-3 0x1.8p1 0b1.1 1e400 1..5",
	"a <<= b >>= c <> d ... e .. f := g ?= h ~= i",
	"include \"file.ci\" 'c' '\\'' \"a\\\"b\"",
	"global inline object of packet where xor",
	"\xef\xbb\xbfbom ident_with_more_than_thirty_two_bytes_in_it",
	"\"unterminated\n'x",
	"$ @ ` # 0x 0z1 1.2.3 99999999999999999999",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.ci файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".ci" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
