// Package encode writes document values as text.
//
// # Usage
//
//	// literal form, the same text as ir.Node.String
//	err := encode.Encode(node, os.Stdout)
//
//	// JSON or YAML
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(encode.JSONFormat))
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(encode.YAMLFormat))
//
//	// coloured literal form for terminals
//	err = encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Every format writes object keys in sorted order.
package encode
