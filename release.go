// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package rodd

const _DEBUG bool = false
const _LOGLEVEL int = 0
