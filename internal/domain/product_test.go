package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/maisonlabs/boutique/internal/domain"
)

func validProductProps() domain.ProductProps {
	return domain.ProductProps{
		ID:          "prod-1",
		Title:       "MacBook Pro",
		Description: "M2 Beast",
		PriceCents:  200000,
		Stock:       10,
	}
}

func TestNewProductValid(t *testing.T) {
	p, err := domain.NewProduct(validProductProps())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Snapshot().PromoPriceCents != nil {
		t.Fatal("expected nil promo price")
	}
}

func TestNewProductValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.ProductProps)
	}{
		{"title too short", func(p *domain.ProductProps) { p.Title = "ab" }},
		{"title too long", func(p *domain.ProductProps) { p.Title = strings.Repeat("x", 100) }},
		{"title only spaces", func(p *domain.ProductProps) { p.Title = "     " }},
		{"description too short", func(p *domain.ProductProps) { p.Description = "no" }},
		{"description too long", func(p *domain.ProductProps) { p.Description = strings.Repeat("x", 500) }},
		{"zero price", func(p *domain.ProductProps) { p.PriceCents = 0 }},
		{"negative price", func(p *domain.ProductProps) { p.PriceCents = -100 }},
		{"price at cap", func(p *domain.ProductProps) { p.PriceCents = domain.MaxPriceCents }},
		{"promo equals price", func(p *domain.ProductProps) { promo := p.PriceCents; p.PromoPriceCents = &promo }},
		{"promo above price", func(p *domain.ProductProps) { promo := p.PriceCents + 1; p.PromoPriceCents = &promo }},
		{"zero stock", func(p *domain.ProductProps) { p.Stock = 0 }},
		{"negative stock", func(p *domain.ProductProps) { p.Stock = -3 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			props := validProductProps()
			tc.mutate(&props)
			_, err := domain.NewProduct(props)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestNewProductBoundaryPrices(t *testing.T) {
	props := validProductProps()
	props.PriceCents = 1
	if _, err := domain.NewProduct(props); err != nil {
		t.Fatalf("price 1 cent should be valid: %v", err)
	}

	props.PriceCents = domain.MaxPriceCents - 1
	if _, err := domain.NewProduct(props); err != nil {
		t.Fatalf("price just under the cap should be valid: %v", err)
	}

	promo := props.PriceCents - 1
	props.PromoPriceCents = &promo
	if _, err := domain.NewProduct(props); err != nil {
		t.Fatalf("promo just under price should be valid: %v", err)
	}
}

func TestProductNormalizeTrimsAndIsIdempotent(t *testing.T) {
	props := validProductProps()
	props.Title = "  MacBook Pro  "
	props.Description = "\tM2 Beast\n"

	p, err := domain.NewProduct(props)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	snap := p.Snapshot()
	if snap.Title != "MacBook Pro" || snap.Description != "M2 Beast" {
		t.Fatalf("expected trimmed fields, got %q / %q", snap.Title, snap.Description)
	}

	// Trimming an already-trimmed value changes nothing.
	again := domain.RehydrateProduct(snap).Snapshot()
	if again.Title != snap.Title || again.Description != snap.Description {
		t.Fatal("normalization is not idempotent")
	}
}

func TestProductUpdateMergesThenRevalidates(t *testing.T) {
	p, _ := domain.NewProduct(validProductProps())

	newTitle := "MacBook Air"
	if err := p.Update(domain.ProductPatch{Title: &newTitle}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := p.Snapshot().Title; got != "MacBook Air" {
		t.Fatalf("expected updated title, got %q", got)
	}

	// Lowering the price below an existing promo fails on a field the
	// patch did not touch.
	promo := 150000
	if err := p.Update(domain.ProductPatch{PromoPriceCents: &promo}); err != nil {
		t.Fatalf("set promo: %v", err)
	}
	lowPrice := 100000
	err := p.Update(domain.ProductPatch{PriceCents: &lowPrice})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := p.Snapshot().PriceCents; got != 200000 {
		t.Fatalf("aggregate mutated by failed update: price %d", got)
	}

	// Clearing the promo makes the same price change valid.
	if err := p.Update(domain.ProductPatch{PriceCents: &lowPrice, ClearPromoPrice: true}); err != nil {
		t.Fatalf("update with cleared promo: %v", err)
	}
}

func TestProductUpdateRejectsZeroStock(t *testing.T) {
	p, _ := domain.NewProduct(validProductProps())
	zero := 0
	err := p.Update(domain.ProductPatch{Stock: &zero})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDecrementStock(t *testing.T) {
	p, _ := domain.NewProduct(validProductProps())

	if err := p.DecrementStock(10); err != nil {
		t.Fatalf("decrement to zero: %v", err)
	}
	if got := p.Snapshot().Stock; got != 0 {
		t.Fatalf("expected stock 0, got %d", got)
	}

	var ve *domain.ValidationError
	if err := p.DecrementStock(1); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError on underflow, got %v", err)
	}
	if err := p.DecrementStock(0); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for non-positive n, got %v", err)
	}
}
