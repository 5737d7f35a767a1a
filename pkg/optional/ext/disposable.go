package ext

import "github.com/ib-77/optional/pkg/optional"

// Disposable adapts a release function to io.Closer so it can be handed to
// Using.
type Disposable struct {
	release func()
}

func NewDisposable(release func()) Disposable {
	optional.MustNotBeNil(release, "release")
	return Disposable{release: release}
}

func (d Disposable) Close() error {
	if d.release != nil {
		d.release()
	}
	return nil
}
