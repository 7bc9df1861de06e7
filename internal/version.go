package internal

// Version is the current lingo release version
const Version = "0.1.0"
