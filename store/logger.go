// SPDX-License-Identifier: MIT
package store

import "github.com/plan-systems/klog"

// klogAdapter routes badger's internal logging to klog. Info and debug
// messages are demoted to verbosity 3 and 4.
type klogAdapter struct{}

func (klogAdapter) Errorf(format string, args ...interface{})   { klog.Errorf("badger: "+format, args...) }
func (klogAdapter) Warningf(format string, args ...interface{}) { klog.Warningf("badger: "+format, args...) }
func (klogAdapter) Infof(format string, args ...interface{})    { klog.V(3).Infof("badger: "+format, args...) }
func (klogAdapter) Debugf(format string, args ...interface{})   { klog.V(4).Infof("badger: "+format, args...) }
