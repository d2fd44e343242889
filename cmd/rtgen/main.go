// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command rtgen generates the size-specialized layers of package static.
//
// Usage:
//
//	rtgen -output hwy/contrib/nn/static
//	rtgen -output . -kinds gru,lstm
//
// Or via go:generate:
//
//	//go:generate go run ../../../../cmd/rtgen -output .
//
// Every layer shape is expanded from a template into a concrete type whose
// weights and state are fixed-size arrays of hwy.Vec4 tiles. The generator
// writes one file per layer family plus a registry mapping shapes to
// constructors.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory")
	packageOut = flag.String("pkg", "static", "Output package name")
	kinds      = flag.String("kinds", "all", "Comma-separated layer kinds to generate ("+strings.Join(allKinds(), ",")+") or 'all'")
	listOnly   = flag.Bool("list", false, "Print the layer types that would be generated and exit")
)

func main() {
	flag.Parse()

	shapes, err := filterShapes(defaultShapes, *kinds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Package:   *packageOut,
		Shapes:    shapes,
	}

	if *listOnly {
		layers, err := gen.layers()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, l := range layers {
			fmt.Println(l.Name)
		}
		return
	}

	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d layers in %s\n", len(shapes), strings.Join(files, ", "))
}
