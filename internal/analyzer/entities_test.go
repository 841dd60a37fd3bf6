package analyzer

import (
	"reflect"
	"testing"

	"analizador/pkg"
)

func TestEntitiesBuckets(t *testing.T) {
	a := New(Config{}, &fakePipeline{
		entities: []Entity{
			{Text: "María García", Label: "PERSON"},
			{Text: "Madrid", Label: "GPE"},
			{Text: "Barcelona", Label: "LOC"},
			{Text: "Telefónica", Label: "ORG"},
		},
	})

	got, err := a.Entities("María García viajó de Madrid a Barcelona por Telefónica.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(got[pkg.BucketPersonas], []string{"María García"}) {
		t.Errorf("Personas = %v", got[pkg.BucketPersonas])
	}
	if !reflect.DeepEqual(got[pkg.BucketLugares], []string{"Barcelona", "Madrid"}) {
		t.Errorf("Lugares = %v, want sorted", got[pkg.BucketLugares])
	}
	if !reflect.DeepEqual(got[pkg.BucketEmpresas], []string{"Telefónica"}) {
		t.Errorf("Empresas = %v", got[pkg.BucketEmpresas])
	}
}

func TestEntitiesAllBucketsPresent(t *testing.T) {
	a := New(Config{}, &fakePipeline{})

	got, err := a.Entities("texto sin entidades")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bucket := range pkg.BucketOrder {
		values, ok := got[bucket]
		if !ok {
			t.Errorf("missing bucket %q", bucket)
			continue
		}
		if values == nil {
			t.Errorf("bucket %q is nil, want empty slice", bucket)
		}
	}
}

func TestEntitiesRegexSupplements(t *testing.T) {
	a := New(Config{}, &fakePipeline{})

	got, err := a.Entities("El 12/05/2024 compraron 20 kg de café a Acme S.A. con un 15 % de descuento.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got[pkg.BucketFechas], []string{"12/05/2024"}) {
		t.Errorf("Fechas = %v", got[pkg.BucketFechas])
	}
	if len(got[pkg.BucketCantidades]) == 0 {
		t.Errorf("Cantidades = %v, want the weight captured", got[pkg.BucketCantidades])
	}
	if !reflect.DeepEqual(got[pkg.BucketEmpresas], []string{"Acme S.A."}) {
		t.Errorf("Empresas = %v", got[pkg.BucketEmpresas])
	}
}

func TestEntitiesDeduplicates(t *testing.T) {
	a := New(Config{}, &fakePipeline{
		entities: []Entity{
			{Text: "Madrid", Label: "GPE"},
			{Text: "Madrid", Label: "GPE"},
		},
	})

	got, err := a.Entities("Madrid y Madrid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got[pkg.BucketLugares], []string{"Madrid"}) {
		t.Errorf("Lugares = %v, want single entry", got[pkg.BucketLugares])
	}
}
