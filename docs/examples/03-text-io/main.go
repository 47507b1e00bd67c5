package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/fathomline/geoindex/geo"
)

func main() {
	p, err := geo.ParsePoint("N45.523100000000 W122.676500000000")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("parsed point:", geo.FormatPoint(p))

	b, err := geo.ParseBox("S5.000000000000 E170.000000000000 N5.000000000000 W170.000000000000")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("parsed box (crosses antimeridian):", geo.FormatBox(b))

	c, err := geo.ParseCircle("N0.000000000000 E0.000000000000 1000000")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("parsed circle:", geo.FormatCircle(c))

	var buf bytes.Buffer
	if err := geo.EncodePoint(&buf, p); err != nil {
		log.Fatal(err)
	}
	decoded, err := geo.DecodePoint(&buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("binary round trip:", geo.FormatPoint(decoded))
}
