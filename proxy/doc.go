// Package proxy implements the Proxy structural pattern in its virtual-proxy
// form: an inexpensive stand-in that defers constructing the expensive real
// subject until it is actually needed.
//
// What:
//
//   - Image: the capability both the real subject and the proxy satisfy —
//     a single Display operation.
//   - RealImage: the expensive subject; constructing one loads it from disk
//     (narrated, simulated).
//   - ImageProxy: holds only the file name until the first Display, then
//     constructs the RealImage once and reuses it forever after.
//
// Why:
//   - Pay construction cost only on first use
//   - Keep the deferral invisible behind the shared capability
//   - Demonstrate lazy-init with a cached subject
//
// Contract:
//
//   - The first Display triggers both the "Loading image from disk" and the
//     "Displaying image" lines; every later Display triggers only the
//     latter.
//   - ImageProxy is not safe for concurrent use: two goroutines racing the
//     first Display may both construct the subject. Demos are
//     single-threaded.
package proxy
