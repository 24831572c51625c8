//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework AppKit
#import <Cocoa/Cocoa.h>
#import <AppKit/AppKit.h>
#include <stdlib.h>

// desktopImagePath returns a malloc'd copy of the main screen's wallpaper
// path, or NULL when there is none.
char *desktopImagePath(void) {
    @autoreleasepool {
        NSScreen *screen = [NSScreen mainScreen];
        if (screen == nil) {
            NSArray<NSScreen *> *screens = [NSScreen screens];
            if ([screens count] == 0) {
                return NULL;
            }
            screen = [screens firstObject];
        }
        NSURL *url = [[NSWorkspace sharedWorkspace] desktopImageURLForScreen:screen];
        if (url == nil || ![url isFileURL]) {
            return NULL;
        }
        const char *path = [[url path] UTF8String];
        if (path == NULL) {
            return NULL;
        }
        return strdup(path);
    }
}
*/
import "C"

import (
	"context"
	"unsafe"
)

// DesktopImagePath returns the wallpaper file of the main screen, or "" if none
func DesktopImagePath(_ context.Context) (string, error) {
	cPath := C.desktopImagePath()
	if cPath == nil {
		return "", nil
	}
	defer C.free(unsafe.Pointer(cPath))
	return C.GoString(cPath), nil
}
