/*
Package resources locates the physical files of bundled font families.

Font bundles follow a fixed folder convention below a resource root:

	<root>/Fonts/<family-folder>/<file>.<ext>
	<root>/Licenses/<family-folder>-LICENSE.txt

Locators address files through this convention. The default locator
works on the configured resource root and falls back to fonts installed
on the system when a bundle file is absent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Ezequiel França

*/
package resources

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'accessiblefonts.resources'
func tracer() tracing.Trace {
	return tracing.Select("accessiblefonts.resources")
}
