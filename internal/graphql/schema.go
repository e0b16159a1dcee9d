package graphql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jobsync-app/jobsync-backend/internal/repository"
)

func buildSchema(svc Services) (graphql.Schema, error) {
	types := newTypes()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields(svc, types),
	})
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutationFields(svc, types),
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

func queryFields(svc Services, types *entityTypes) graphql.Fields {
	return graphql.Fields{
		"getInstitutes": &graphql.Field{
			Type: types.institutePage,
			Args: graphql.FieldConfigArgument{
				"name":    &graphql.ArgumentConfig{Type: graphql.String},
				"country": &graphql.ArgumentConfig{Type: graphql.String},
				"id":      &graphql.ArgumentConfig{Type: graphql.String},
				"page":    &graphql.ArgumentConfig{Type: graphql.Int},
				"limit":   &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				params, err := pageArgs(p.Args)
				if err != nil {
					return nil, err
				}
				id, err := optionalIDArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				return svc.Institutes.List(repository.InstituteFilter{
					ID:      id,
					Name:    strArg(p.Args, "name"),
					Country: strArg(p.Args, "country"),
				}, params)
			},
		},
		"getInstitute": &graphql.Field{
			Type: types.institute,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				inst, err := svc.Institutes.Get(id)
				if err != nil {
					return nil, err
				}
				return *inst, nil
			},
		},

		"getClients": &graphql.Field{
			Type: types.clientPage,
			Args: graphql.FieldConfigArgument{
				"name":      &graphql.ArgumentConfig{Type: graphql.String},
				"country":   &graphql.ArgumentConfig{Type: graphql.String},
				"institute": &graphql.ArgumentConfig{Type: graphql.String},
				"id":        &graphql.ArgumentConfig{Type: graphql.String},
				"page":      &graphql.ArgumentConfig{Type: graphql.Int},
				"limit":     &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				params, err := pageArgs(p.Args)
				if err != nil {
					return nil, err
				}
				id, err := optionalIDArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				return svc.Clients.List(repository.ClientFilter{
					ID:            id,
					Name:          strArg(p.Args, "name"),
					Country:       strArg(p.Args, "country"),
					InstituteName: strArg(p.Args, "institute"),
				}, params)
			},
		},
		"getClient": &graphql.Field{
			Type: types.client,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				client, err := svc.Clients.Get(id)
				if err != nil {
					return nil, err
				}
				return *client, nil
			},
		},

		"getWorkers": &graphql.Field{
			Type: types.workerPage,
			Args: graphql.FieldConfigArgument{
				"name":        &graphql.ArgumentConfig{Type: graphql.String},
				"country":     &graphql.ArgumentConfig{Type: graphql.String},
				"institute":   &graphql.ArgumentConfig{Type: graphql.String},
				"specialties": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				"id":          &graphql.ArgumentConfig{Type: graphql.String},
				"page":        &graphql.ArgumentConfig{Type: graphql.Int},
				"limit":       &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				params, err := pageArgs(p.Args)
				if err != nil {
					return nil, err
				}
				id, err := optionalIDArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				return svc.Workers.List(repository.WorkerFilter{
					ID:            id,
					Name:          strArg(p.Args, "name"),
					Country:       strArg(p.Args, "country"),
					InstituteName: strArg(p.Args, "institute"),
					Specialties:   strListArg(p.Args, "specialties"),
				}, params)
			},
		},
		"getWorker": &graphql.Field{
			Type: types.worker,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				worker, err := svc.Workers.Get(id)
				if err != nil {
					return nil, err
				}
				return *worker, nil
			},
		},

		"getTasks": &graphql.Field{
			Type: types.taskPage,
			Args: graphql.FieldConfigArgument{
				"name":      &graphql.ArgumentConfig{Type: graphql.String},
				"type":      &graphql.ArgumentConfig{Type: graphql.String},
				"status":    &graphql.ArgumentConfig{Type: graphql.String},
				"client_id": &graphql.ArgumentConfig{Type: graphql.String},
				"worker_id": &graphql.ArgumentConfig{Type: graphql.String},
				"id":        &graphql.ArgumentConfig{Type: graphql.String},
				"page":      &graphql.ArgumentConfig{Type: graphql.Int},
				"limit":     &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				params, err := pageArgs(p.Args)
				if err != nil {
					return nil, err
				}
				id, err := optionalIDArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				clientID, err := optionalIDArg(p.Args, "client_id")
				if err != nil {
					return nil, err
				}
				workerID, err := optionalIDArg(p.Args, "worker_id")
				if err != nil {
					return nil, err
				}
				return svc.Tasks.List(repository.TaskFilter{
					ID:       id,
					Name:     strArg(p.Args, "name"),
					Type:     strArg(p.Args, "type"),
					Status:   strArg(p.Args, "status"),
					ClientID: clientID,
					WorkerID: workerID,
				}, params)
			},
		},
		"getTask": &graphql.Field{
			Type: types.task,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				task, err := svc.Tasks.Get(id)
				if err != nil {
					return nil, err
				}
				return *task, nil
			},
		},

		"getUsers": &graphql.Field{
			Type: types.userPage,
			Args: graphql.FieldConfigArgument{
				"name":     &graphql.ArgumentConfig{Type: graphql.String},
				"username": &graphql.ArgumentConfig{Type: graphql.String},
				"role":     &graphql.ArgumentConfig{Type: graphql.String},
				"page":     &graphql.ArgumentConfig{Type: graphql.Int},
				"limit":    &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				params, err := pageArgs(p.Args)
				if err != nil {
					return nil, err
				}
				return svc.Users.List(repository.UserFilter{
					Name:     strArg(p.Args, "name"),
					Username: strArg(p.Args, "username"),
					Role:     strArg(p.Args, "role"),
				}, params)
			},
		},
		"getUser": &graphql.Field{
			Type: types.user,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodGet); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				user, err := svc.Users.Get(id)
				if err != nil {
					return nil, err
				}
				return *user, nil
			},
		},
	}
}
