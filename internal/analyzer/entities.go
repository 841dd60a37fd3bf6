package analyzer

import (
	"regexp"
	"sort"

	"analizador/pkg"
)

// NER labels mapped to their output bucket.
var entityBuckets = map[string]string{
	"PERSON": pkg.BucketPersonas,
	"PER":    pkg.BucketPersonas,
	"GPE":    pkg.BucketLugares,
	"LOC":    pkg.BucketLugares,
	"ORG":    pkg.BucketEmpresas,
	"DATE":   pkg.BucketFechas,
}

// Regex supplements for entity kinds the statistical model misses.
var (
	cantidadPattern = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s?(?:(?:kg|km|kilos?|metros?|litros?|gramos?|toneladas?|millones|miles|por\s?ciento)\b|%)`)
	empresaPattern  = regexp.MustCompile(`\b[A-ZÁÉÍÓÚÑ][\wáéíóúñü]*\s(?:S\.A\.|S\.L\.|Inc\.?|Corp\.?|Ltd\.?)`)
)

// Entities groups the named entities of the text into fixed buckets. Every
// bucket is present, sorted and de-duplicated, empty when nothing matched.
func (a *Analyzer) Entities(text string) (pkg.EntityGroups, error) {
	found, err := a.pipe().Entities(text)
	if err != nil {
		return nil, err
	}

	groups := make(pkg.EntityGroups, len(pkg.BucketOrder))
	seen := make(map[string]map[string]bool, len(pkg.BucketOrder))
	for _, bucket := range pkg.BucketOrder {
		groups[bucket] = []string{}
		seen[bucket] = make(map[string]bool)
	}

	put := func(bucket, value string) {
		if value == "" || seen[bucket][value] {
			return
		}
		seen[bucket][value] = true
		groups[bucket] = append(groups[bucket], value)
	}

	for _, ent := range found {
		if bucket, ok := entityBuckets[ent.Label]; ok {
			put(bucket, ent.Text)
		}
	}
	for _, m := range fechaPattern.FindAllString(text, -1) {
		put(pkg.BucketFechas, m)
	}
	for _, m := range cantidadPattern.FindAllString(text, -1) {
		put(pkg.BucketCantidades, m)
	}
	for _, m := range empresaPattern.FindAllString(text, -1) {
		put(pkg.BucketEmpresas, m)
	}

	for _, bucket := range pkg.BucketOrder {
		sort.Strings(groups[bucket])
	}
	return groups, nil
}
