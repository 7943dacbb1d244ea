// Package io loads tree definitions from TOML and JSON files.
//
// # Overview
//
// A definition describes one tree plus optional page text. The same shape is
// used by both formats:
//
//	title = "Org Chart"
//
//	[root]
//	name = "Main"
//	type = "button"
//	label = "Test Btn"
//	action = "toggle(this)"
//
//	[[root.children]]
//	name = "Sub-1"
//
//	[[root.children]]
//	name = "Sub-2"
//
//	[[root.children.children]]
//	name = "Sub-2-1"
//
// or, in JSON:
//
//	{"root": {"name": "Main", "type": "button", "children": [{"name": "Sub-1"}]}}
//
// # Node Fields
//
// Required:
//   - name: Display text (any characters; escaped at render time)
//
// Optional:
//   - type: "simple" (default) or "button"
//   - label: Button text, button nodes only (defaults to "Test Btn")
//   - action: Button onclick handler, button nodes only
//   - children: Nested nodes, rendered in file order
//
// # Errors
//
// Decoding errors carry codes from [errors]: INVALID_FORMAT for syntax
// errors, unknown keys, unknown node types and unsupported extensions;
// INVALID_INPUT for semantic problems such as a missing name; FILE_NOT_FOUND
// when the file does not exist. Messages name the offending node by path,
// e.g. "root.children[1].children[0]".
package io
