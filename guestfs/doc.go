// Package guestfs adapts a Provider to io/fs.FS so WASI guests (and anything
// else consuming fs.FS) run against the fault-injected filesystem.
//
// Every call on the adapter is driven through the provider, so faults
// configured on read, readdir, lseek, close and friends surface inside the
// guest as ordinary errno-carrying PathErrors. Mount attaches the adapter to
// a wazero FSConfig:
//
//	fsCfg := guestfs.Mount(wazero.NewFSConfig(), sess.Provider(), hostDir, "/work")
//	modCfg := wazero.NewModuleConfig().WithFSConfig(fsCfg)
//
// The adapter is read-side only, matching what fs.FS can express; mutation
// goes through the Provider directly.
package guestfs
