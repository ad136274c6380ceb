package service

import (
	"github.com/tasktrail/tasktrail/internal/domain/task"
	"github.com/tasktrail/tasktrail/internal/domain/user"
)

// TaskCreatorProvider is a service locator provider.
type TaskCreatorProvider interface {
	TaskCreator() task.Creator
}

// TaskUpdaterProvider is a service locator provider.
type TaskUpdaterProvider interface {
	TaskUpdater() task.Updater
}

// TaskFinderProvider is a service locator provider.
type TaskFinderProvider interface {
	TaskFinder() task.Finder
}

// TaskDeleterProvider is a service locator provider.
type TaskDeleterProvider interface {
	TaskDeleter() task.Deleter
}

// TaskListerProvider is a service locator provider.
type TaskListerProvider interface {
	TaskLister() task.Lister
}

// UserRegistrarProvider is a service locator provider.
type UserRegistrarProvider interface {
	UserRegistrar() user.Registrar
}

// UserAuthenticatorProvider is a service locator provider.
type UserAuthenticatorProvider interface {
	UserAuthenticator() user.Authenticator
}

// UserResolverProvider is a service locator provider.
type UserResolverProvider interface {
	UserResolver() user.Resolver
}
