package assets

import "embed"

// Assets holds the stylesheet served under /assets.
//
//go:embed css/*
var Assets embed.FS
