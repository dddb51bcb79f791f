package service

import (
	"context"

	"github.com/google/uuid"

	"estate-ledger/internal/model"
	"estate-ledger/internal/repository"
	"estate-ledger/pkg/apierror"
)

type PersonService struct {
	store repository.PersonStore
	pages Pagination
}

func NewPersonService(store repository.PersonStore, pages Pagination) *PersonService {
	return &PersonService{store: store, pages: pages}
}

func (s *PersonService) Create(ctx context.Context, req model.PersonRequest) (model.Person, error) {
	name, age, err := validatePerson(req)
	if err != nil {
		return model.Person{}, err
	}

	now := storageNow()
	person := model.Person{ID: uuid.NewString(), Name: name, Age: age, CreatedAt: now, UpdatedAt: now}
	if err := s.store.Create(ctx, person); err != nil {
		return model.Person{}, err
	}
	return person, nil
}

func (s *PersonService) Get(ctx context.Context, id string) (model.Person, error) {
	id, ok := canonicalID(id)
	if !ok {
		return model.Person{}, model.ErrPersonNotFound
	}
	return s.store.FindByID(ctx, id)
}

func (s *PersonService) List(ctx context.Context, page int, limit int) (model.PersonList, model.Meta, error) {
	page, limit = s.pages.normalize(page, limit)
	persons, total, err := s.store.List(ctx, limit, offsetFor(page, limit))
	if err != nil {
		return model.PersonList{}, model.Meta{}, err
	}
	return model.PersonList{Persons: persons}, model.NewMeta(page, limit, total), nil
}

func (s *PersonService) Update(ctx context.Context, id string, req model.PersonRequest) (model.Person, error) {
	person, err := s.Get(ctx, id)
	if err != nil {
		return model.Person{}, err
	}

	name, age, err := validatePerson(req)
	if err != nil {
		return model.Person{}, err
	}

	person.Name = name
	person.Age = age
	person.UpdatedAt = storageNow()
	if err := s.store.Update(ctx, person); err != nil {
		return model.Person{}, err
	}
	return person, nil
}

func (s *PersonService) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return model.ErrPersonNotFound
	}
	return s.store.Delete(ctx, id)
}

func validatePerson(req model.PersonRequest) (string, int, error) {
	if req.Name == nil {
		return "", 0, apierror.Validation("name is required", "name")
	}
	name, err := requireText(*req.Name, "name", 1, 50)
	if err != nil {
		return "", 0, err
	}
	if req.Age == nil {
		return "", 0, apierror.Validation("age is required", "age")
	}
	if *req.Age < 0 {
		return "", 0, apierror.Validation("age cannot be negative", "age")
	}
	return name, *req.Age, nil
}
