/*
Package font provides the basic font value types of AccessibleFonts,
together with a thin layer over scalable fonts and sized typecases.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "family" is a typeface design, e.g. "Lexend". Families bundled with
this module are enumerated in package catalog.

* A "scalable font" is a variant of a family with a certain weight and
style, e.g. "Lexend SemiBold".

* A "typecase" is a scaled font, i.e. a font prepared at a certain size,
e.g. "Lexend SemiBold 11pt". The name is reminiscent of the wooden boxes
of typesetters in the era of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Ezequiel França

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'accessiblefonts.font'
func tracer() tracing.Trace {
	return tracing.Select("accessiblefonts.font")
}
