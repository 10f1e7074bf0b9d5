//go:build !rdiff_expr

package autodiff

const defaultMode = Eager
