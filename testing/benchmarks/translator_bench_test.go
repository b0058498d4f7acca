package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/polyglot"
	"github.com/zoobzio/polyglot/json"
	polytest "github.com/zoobzio/polyglot/testing"
	"github.com/zoobzio/polyglot/yaml"
)

func seeded(b *testing.B, codec polyglot.Codec) (*polyglot.Translator[polytest.Article], *polytest.Article, context.Context) {
	b.Helper()
	ctx := polytest.Context(b)
	tr := polytest.ArticleTranslator(b, codec)
	a := &polytest.Article{}
	if err := tr.Merge(ctx, a, "title", polyglot.Translations{"en": "Hello", "de": "Hallo", "it": "Ciao"}); err != nil {
		b.Fatalf("Merge() error: %v", err)
	}
	return tr, a, ctx
}

func BenchmarkTranslator_Read_YAML(b *testing.B) {
	tr, a, ctx := seeded(b, yaml.New())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Read(ctx, a, "title")
	}
}

func BenchmarkTranslator_Read_Fallback_YAML(b *testing.B) {
	tr, a, _ := seeded(b, yaml.New())
	ctx := polyglot.WithEnvironment(context.Background(), polyglot.Environment{Locale: "fr", DefaultLocale: "de"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Read(ctx, a, "title")
	}
}

func BenchmarkTranslator_Write_YAML(b *testing.B) {
	tr, a, ctx := seeded(b, yaml.New())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Write(ctx, a, "title", "Hello")
	}
}

func BenchmarkTranslator_Read_JSON(b *testing.B) {
	tr, a, ctx := seeded(b, json.New())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Read(ctx, a, "title")
	}
}

func BenchmarkTranslator_Write_JSON(b *testing.B) {
	tr, a, ctx := seeded(b, json.New())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Write(ctx, a, "title", "Hello")
	}
}
