// Package ascent carries project-wide metadata.
package ascent

// Version is the current release version of the ascent module.
const Version = "0.1.0"
