package service

import (
	"context"
	"iter"

	"userstore/internal/user"
	"userstore/internal/validation"
)

// SearchByFirstName returns users with the given first name.
func (n *Node) SearchByFirstName(ctx context.Context, firstName string) (iter.Seq[user.User], error) {
	if err := validation.CheckFirstName(firstName); err != nil {
		return nil, err
	}
	return n.Search(ctx, user.ByFirstName(firstName))
}

// SearchByLastName returns users with the given last name.
func (n *Node) SearchByLastName(ctx context.Context, lastName string) (iter.Seq[user.User], error) {
	if err := validation.CheckLastName(lastName); err != nil {
		return nil, err
	}
	return n.Search(ctx, user.ByLastName(lastName))
}

// SearchByAge returns users of the given age.
func (n *Node) SearchByAge(ctx context.Context, age int) (iter.Seq[user.User], error) {
	if err := validation.CheckAge(n.ages, age); err != nil {
		return nil, err
	}
	return n.Search(ctx, user.ByAge(age))
}

// SearchByFirstNameAndLastName returns users matching both names.
func (n *Node) SearchByFirstNameAndLastName(ctx context.Context, firstName, lastName string) (iter.Seq[user.User], error) {
	if err := validation.CheckFirstName(firstName); err != nil {
		return nil, err
	}
	if err := validation.CheckLastName(lastName); err != nil {
		return nil, err
	}
	return n.Search(ctx, user.And(user.ByFirstName(firstName), user.ByLastName(lastName)))
}

// SearchByFirstNameAndAge returns users with the given first name and age.
func (n *Node) SearchByFirstNameAndAge(ctx context.Context, firstName string, age int) (iter.Seq[user.User], error) {
	if err := validation.CheckFirstName(firstName); err != nil {
		return nil, err
	}
	if err := validation.CheckAge(n.ages, age); err != nil {
		return nil, err
	}
	return n.Search(ctx, user.And(user.ByFirstName(firstName), user.ByAge(age)))
}

// SearchByLastNameAndAge returns users with the given last name and age.
func (n *Node) SearchByLastNameAndAge(ctx context.Context, lastName string, age int) (iter.Seq[user.User], error) {
	if err := validation.CheckLastName(lastName); err != nil {
		return nil, err
	}
	if err := validation.CheckAge(n.ages, age); err != nil {
		return nil, err
	}
	return n.Search(ctx, user.And(user.ByLastName(lastName), user.ByAge(age)))
}

// SearchByFirstNameAndLastNameAndAge returns users matching every field.
func (n *Node) SearchByFirstNameAndLastNameAndAge(ctx context.Context, firstName, lastName string, age int) (iter.Seq[user.User], error) {
	if err := validation.CheckFirstName(firstName); err != nil {
		return nil, err
	}
	if err := validation.CheckLastName(lastName); err != nil {
		return nil, err
	}
	if err := validation.CheckAge(n.ages, age); err != nil {
		return nil, err
	}
	return n.Search(ctx, user.And(user.ByFirstName(firstName), user.ByLastName(lastName), user.ByAge(age)))
}

var _ Service = (*Node)(nil)
var _ Subscriber = (*Node)(nil)
