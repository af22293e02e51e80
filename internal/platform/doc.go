package platform

// Package platform contains OS integration glue: opening URLs with the
// default handler and reading the user name from the environment.
