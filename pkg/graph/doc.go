// Package graph provides the serialization types for graph fixtures.
//
// # Format
//
// A fixture is a single-line JSON object with a node list and a link list:
//
//	{
//	  "nodes": [{"id":1,"num":7,"cluster":2,"pie":{"label1":3,"label2":0,"label3":9,"label4":4}}, ...],
//	  "links": [{"id":5,"source":1,"target":3}, ...]
//	}
//
// Node ids run 1..N and link ids N+1..2N-1, both in order. The optional
// "cluster" and "pie" fields are omitted when unset.
//
// Common operations:
//
//	doc, _ := graph.ReadFile("testData-50-50-0-0.json") // File → Document
//	data, _ := graph.Marshal(doc)                        // Document → []byte
//	err := doc.Validate()                                // id layout and link endpoints
//	stats := doc.Stats()                                 // counts for display
//
// Documents are built by package fixture and written to disk by package io.
//
// # Concurrency
//
// Documents are plain values; concurrent reads are safe, writes are not.
package graph
