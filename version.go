package clientdetect

// Version is the library version string.
const Version = "0.2.0"
