package service

import "github.com/tasktrail/tasktrail/pkg/graceful"

// Locator defines application services.
type Locator struct {
	graceful.Shutdown

	TaskCreatorProvider
	TaskUpdaterProvider
	TaskFinderProvider
	TaskDeleterProvider
	TaskListerProvider

	UserRegistrarProvider
	UserAuthenticatorProvider
	UserResolverProvider
}
