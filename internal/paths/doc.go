// Package paths centralizes filesystem path resolution for pintas:
// the alias config file, the pintas home directory, and the shim
// directory placed on the user's PATH.
package paths
