// Package stage declares the fixed generation pipeline as static data: the
// closed set of stage kinds, their artifact file names, and the linear
// prerequisite chain (idea → characters → locations → outline → breakdown →
// prose, with title and epub hanging off prose). The package holds no
// mutable state and performs no I/O beyond the artifact existence check
// inside CheckReady.
package stage
