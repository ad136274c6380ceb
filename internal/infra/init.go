// Package infra initializes application resources.
package infra

import (
	"github.com/tasktrail/tasktrail/internal/infra/repository"
	"github.com/tasktrail/tasktrail/internal/infra/service"
)

// NewServiceLocator initializes application resources.
func NewServiceLocator(cfg service.Config) *service.Locator {
	l := service.Locator{}

	taskRepository := repository.NewTask()
	userRepository := repository.NewUser(cfg.BCryptCost)

	l.TaskCreatorProvider = taskRepository
	l.TaskUpdaterProvider = taskRepository
	l.TaskFinderProvider = taskRepository
	l.TaskDeleterProvider = taskRepository
	l.TaskListerProvider = taskRepository

	l.UserRegistrarProvider = userRepository
	l.UserAuthenticatorProvider = userRepository
	l.UserResolverProvider = userRepository

	return &l
}
