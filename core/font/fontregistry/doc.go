/*
Package fontregistry manages the process-wide font index and the one-time
registration of the bundled font families.

The registry maps normalized canonical font names to parsed scalable
fonts and caches sized typecases derived from them. The registrar sits on
top of it and makes sure each family's font files are located, parsed and
indexed at most once per process, no matter how many goroutines ask for
fonts concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Ezequiel França

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'accessiblefonts.registry'
func tracer() tracing.Trace {
	return tracing.Select("accessiblefonts.registry")
}
