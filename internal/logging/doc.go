// Package logging provides the application log context. A Logger is
// constructed explicitly at startup and passed to the components that need
// it; there is no package-level global. Output goes to one UTF-8 text file
// per calendar day plus the console, one line per record with a timestamp,
// level, source-location tag and message.
package logging
