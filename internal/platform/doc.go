package platform

// Package platform contains OS integration glue: destination folder
// provisioning, the default downloads location, and opening finished folders
// in the system file manager.
