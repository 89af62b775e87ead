package scenic

// Version is the current release of the scenic library.
const Version = "0.3.0"
