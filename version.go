package navigator

// Version is the module version reported by navctl.
const Version = "0.1.0"
