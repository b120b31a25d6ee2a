package importer

import (
	"strings"
	"testing"
)

func TestParseBasicCSV(t *testing.T) {
	csv := `Sifra,Naziv,Dobavljac,Cena,Kolicina
W1,Bolt,Alpha,2.5,100
W2,Nut,Beta,1.2,50
`
	rows, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].Code != "W1" || rows[0].Name != "Bolt" || rows[0].Supplier != "Alpha" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[0].Price != 2.5 || rows[0].Quantity != 100 {
		t.Errorf("unexpected numbers: %+v", rows[0])
	}
	if rows[0].Project != "Skladište" {
		t.Errorf("expected default project, got %q", rows[0].Project)
	}
	if rows[0].LowStockThreshold != 10 {
		t.Errorf("expected default threshold 10, got %d", rows[0].LowStockThreshold)
	}
}

func TestParseSemicolonDelimiter(t *testing.T) {
	csv := "Sifra;Naziv;Cena;Ulaz\nW1;Bolt;2,5;10\n"

	rows, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Price != 2.5 {
		t.Errorf("expected decimal-comma price 2.5, got %v", rows[0].Price)
	}
	if rows[0].Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", rows[0].Quantity)
	}
}

func TestParseSkipsRowsWithoutCodeOrName(t *testing.T) {
	csv := `Sifra,Naziv,Kolicina
W1,Bolt,10
,Nameless,5
W3,,7
`
	rows, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 usable row, got %d", len(rows))
	}
}

func TestParseMalformedNumbersCoercedToZero(t *testing.T) {
	csv := `Sifra,Naziv,Cena,Kolicina
W1,Bolt,abc,xyz
`
	rows, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rows[0].Price != 0 || rows[0].Quantity != 0 {
		t.Errorf("expected malformed numbers coerced to zero, got %+v", rows[0])
	}
}

func TestParseAttributeColumns(t *testing.T) {
	csv := `Sifra,Naziv,Okov ime,Okov cena,Okov kom,Minimum
W1,Hinge,Spojnica,1.5,4,20
`
	rows, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := rows[0]
	if r.OkovName != "Spojnica" || r.OkovPrice != 1.5 || r.OkovQty != 4 {
		t.Errorf("unexpected okov mapping: %+v", r)
	}
	if r.LowStockThreshold != 20 {
		t.Errorf("expected threshold 20, got %d", r.LowStockThreshold)
	}
}

func TestParseRequiresHeaderAndData(t *testing.T) {
	if _, err := Parse(strings.NewReader("Sifra,Naziv\n")); err == nil {
		t.Error("expected error for header-only input")
	}
}
