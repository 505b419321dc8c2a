// Package model provides the intermediate representation (IR) shared by the
// decoder adapter and the layout engine.
//
// This package defines the value types that flow through the outline
// pipeline. The decoder produces a [Document] of positioned [TextFragment]
// records; the layout engine reduces those to [Line] values, computes an
// immutable [DocumentProfile], labels each line as a [ClassifiedLine], and
// assembles the final [Outline].
//
// # Data Flow
//
//	Document -> []Line -> DocumentProfile -> []ClassifiedLine -> Outline
//
// # JSON Contract
//
// [Outline] and [OutlineEntry] carry the external JSON contract:
//
//	{
//	  "title": "<string>",
//	  "outline": [
//	    {"level": "H1", "text": "Introduction", "page": 1}
//	  ]
//	}
//
// The outline array is always present, never null. Page numbers are 1-based.
//
// # Geometry
//
// Geometric primitives support position calculations:
//
//   - [BBox] - bounding box with union and overlap calculations
//   - [Point] - 2D point
package model
