// Package web embeds the static map UI served next to the API.
package web

import "embed"

//go:embed static/*
var Assets embed.FS
