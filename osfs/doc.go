// Package osfs is the real filesystem provider.
//
// Operations go straight to the kernel through golang.org/x/sys/unix, so
// failures surface as bare unix.Errno values. The fault interceptor reuses
// the same convention when it injects errors, which is what makes injected
// and genuine failures indistinguishable to callers.
package osfs
