package main

import (
	"fmt"
	"log"

	"github.com/fathomline/geoindex/geo"
	"github.com/fathomline/geoindex/pkg/gistindex"
)

func main() {
	idx := gistindex.NewIndex()

	cities := map[string][2]float64{
		"portland":  {45.5231, -122.6765},
		"seattle":   {47.6062, -122.3321},
		"sydney":    {-33.8688, 151.2093},
		"auckland":  {-36.8485, 174.7633},
	}

	items := make([]gistindex.NamedGeometry, 0, len(cities))
	for name, ll := range cities {
		p, _, err := geo.NewPoint(ll[0], ll[1])
		if err != nil {
			log.Fatal(err)
		}
		items = append(items, gistindex.NamedGeometry{ID: name, Geometry: p})
	}

	if errs := gistindex.BulkInsert(idx, items, gistindex.DefaultBulkOptions()); len(errs) > 0 {
		log.Fatalf("bulk insert errors: %v", errs)
	}
	fmt.Printf("indexed %d points\n", idx.Count())

	pnw, _, err := geo.NewPoint(46.5, -122.0)
	if err != nil {
		log.Fatal(err)
	}
	searchRadius, _, err := geo.NewCircle(pnw, 400000)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("within 400km of %s: %v\n", geo.FormatPoint(pnw), idx.Overlaps(searchRadius))

	fmt.Printf("nearest 2 to %s: %v\n", geo.FormatPoint(pnw), idx.Nearest(pnw, 2))
}
