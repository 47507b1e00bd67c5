package main

import (
	"fmt"
	"log"

	"github.com/fathomline/geoindex/geo"
)

func main() {
	// Construct a point; diagnostics report any normalization applied.
	p, diags, err := geo.NewPoint(45.5231, -122.6765)
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range diags {
		fmt.Printf("%s: %s\n", d.Severity, d.Message)
	}
	fmt.Printf("Point: %s\n", geo.FormatPoint(p))

	// Build a polygon and test containment.
	pts := []geo.Point{
		mustPoint(45.0, -123.0),
		mustPoint(45.0, -122.0),
		mustPoint(46.0, -122.0),
		mustPoint(46.0, -123.0),
	}
	cluster, err := geo.NewCluster([]geo.Entry{{Kind: geo.EntryPolygon, Points: pts}})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Contains %s: %v\n", geo.FormatPoint(p), cluster.Contains(p))
	fmt.Printf("Distance to cluster: %.2f meters\n", cluster.DistanceTo(p))
}

func mustPoint(lat, lon float64) geo.Point {
	p, _, err := geo.NewPoint(lat, lon)
	if err != nil {
		log.Fatal(err)
	}
	return p
}
