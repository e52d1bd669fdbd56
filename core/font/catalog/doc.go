/*
Package catalog is the authoritative table of the accessibility font
families bundled with this module.

For every family the catalog knows the physical font files the family
ships, the canonical name the font index uses for each of them, and the
set of weights and styles the family supports. Requests for unsupported
variants are resolved to the nearest supported one: weights by minimal
numeric distance on the CSS scale, italics downgraded to normal when a
family ships no italic faces.

All data is fixed at compile time and all operations are pure, so the
catalog may be queried from any number of goroutines without locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Ezequiel França

*/
package catalog
