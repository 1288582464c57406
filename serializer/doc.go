// Package serializer provides content-type aware encoding and decoding of
// REST payloads.
//
// A Serializer converts between typed values and text documents. The
// Pipeline is a content-type-keyed registry consulted when decoding response
// bodies; lookup is exact-string and case-insensitive, with no MIME
// parameter or wildcard matching.
//
//	pipeline, err := serializer.NewPipeline(
//	    serializer.Registration{ContentType: "application/json", Serializer: serializer.JSON{}},
//	    serializer.Registration{ContentType: "application/xml", Serializer: serializer.XML{}},
//	)
package serializer
