package graphql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jobsync-app/jobsync-backend/internal/dto"
)

func mutationFields(svc Services, types *entityTypes) graphql.Fields {
	return graphql.Fields{
		"addInstitute": &graphql.Field{
			Type: types.institute,
			Args: graphql.FieldConfigArgument{
				"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"country": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPost); err != nil {
					return nil, err
				}
				req := dto.CreateInstituteRequest{
					Name:    strArg(p.Args, "name"),
					Country: strArg(p.Args, "country"),
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				inst, err := svc.Institutes.Create(&req)
				if err != nil {
					return nil, err
				}
				return *inst, nil
			},
		},
		"updateInstitute": &graphql.Field{
			Type: types.institute,
			Args: graphql.FieldConfigArgument{
				"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"name":    &graphql.ArgumentConfig{Type: graphql.String},
				"country": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPut); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				req := dto.UpdateInstituteRequest{
					Name:    strPtrArg(p.Args, "name"),
					Country: strPtrArg(p.Args, "country"),
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				inst, err := svc.Institutes.Update(id, &req)
				if err != nil {
					return nil, err
				}
				return *inst, nil
			},
		},
		"deleteInstitute": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodDelete); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				if err := svc.Institutes.Delete(id); err != nil {
					return nil, err
				}
				return true, nil
			},
		},

		"addClient": &graphql.Field{
			Type: types.client,
			Args: graphql.FieldConfigArgument{
				"name":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"country":      &graphql.ArgumentConfig{Type: graphql.String},
				"phone_number": &graphql.ArgumentConfig{Type: graphql.String},
				"email":        &graphql.ArgumentConfig{Type: graphql.String},
				"currency":     &graphql.ArgumentConfig{Type: graphql.String},
				"institute_id": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPost); err != nil {
					return nil, err
				}
				instituteID, err := idPtrArg(p.Args, "institute_id")
				if err != nil {
					return nil, err
				}
				req := dto.CreateClientRequest{
					Name:        strArg(p.Args, "name"),
					Country:     strArg(p.Args, "country"),
					PhoneNumber: strArg(p.Args, "phone_number"),
					Email:       strArg(p.Args, "email"),
					Currency:    strArg(p.Args, "currency"),
					InstituteID: instituteID,
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				client, err := svc.Clients.Create(&req)
				if err != nil {
					return nil, err
				}
				return *client, nil
			},
		},
		"updateClient": &graphql.Field{
			Type: types.client,
			Args: graphql.FieldConfigArgument{
				"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"name":         &graphql.ArgumentConfig{Type: graphql.String},
				"country":      &graphql.ArgumentConfig{Type: graphql.String},
				"phone_number": &graphql.ArgumentConfig{Type: graphql.String},
				"email":        &graphql.ArgumentConfig{Type: graphql.String},
				"currency":     &graphql.ArgumentConfig{Type: graphql.String},
				"institute_id": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPut); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				instituteID, err := idPtrArg(p.Args, "institute_id")
				if err != nil {
					return nil, err
				}
				req := dto.UpdateClientRequest{
					Name:        strPtrArg(p.Args, "name"),
					Country:     strPtrArg(p.Args, "country"),
					PhoneNumber: strPtrArg(p.Args, "phone_number"),
					Email:       strPtrArg(p.Args, "email"),
					Currency:    strPtrArg(p.Args, "currency"),
					InstituteID: instituteID,
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				client, err := svc.Clients.Update(id, &req)
				if err != nil {
					return nil, err
				}
				return *client, nil
			},
		},
		"deleteClient": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodDelete); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				if err := svc.Clients.Delete(id); err != nil {
					return nil, err
				}
				return true, nil
			},
		},

		"addWorker": &graphql.Field{
			Type: types.worker,
			Args: graphql.FieldConfigArgument{
				"name":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"country":      &graphql.ArgumentConfig{Type: graphql.String},
				"phone_number": &graphql.ArgumentConfig{Type: graphql.String},
				"email":        &graphql.ArgumentConfig{Type: graphql.String},
				"currency":     &graphql.ArgumentConfig{Type: graphql.String},
				"institute_id": &graphql.ArgumentConfig{Type: graphql.String},
				"specialties":  &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPost); err != nil {
					return nil, err
				}
				instituteID, err := idPtrArg(p.Args, "institute_id")
				if err != nil {
					return nil, err
				}
				req := dto.CreateWorkerRequest{
					Name:        strArg(p.Args, "name"),
					Country:     strArg(p.Args, "country"),
					PhoneNumber: strArg(p.Args, "phone_number"),
					Email:       strArg(p.Args, "email"),
					Currency:    strArg(p.Args, "currency"),
					InstituteID: instituteID,
					Specialties: strListArg(p.Args, "specialties"),
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				worker, err := svc.Workers.Create(&req)
				if err != nil {
					return nil, err
				}
				return *worker, nil
			},
		},
		"updateWorker": &graphql.Field{
			Type: types.worker,
			Args: graphql.FieldConfigArgument{
				"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"name":         &graphql.ArgumentConfig{Type: graphql.String},
				"country":      &graphql.ArgumentConfig{Type: graphql.String},
				"phone_number": &graphql.ArgumentConfig{Type: graphql.String},
				"email":        &graphql.ArgumentConfig{Type: graphql.String},
				"currency":     &graphql.ArgumentConfig{Type: graphql.String},
				"institute_id": &graphql.ArgumentConfig{Type: graphql.String},
				"specialties":  &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPut); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				instituteID, err := idPtrArg(p.Args, "institute_id")
				if err != nil {
					return nil, err
				}
				req := dto.UpdateWorkerRequest{
					Name:        strPtrArg(p.Args, "name"),
					Country:     strPtrArg(p.Args, "country"),
					PhoneNumber: strPtrArg(p.Args, "phone_number"),
					Email:       strPtrArg(p.Args, "email"),
					Currency:    strPtrArg(p.Args, "currency"),
					InstituteID: instituteID,
					Specialties: strListArg(p.Args, "specialties"),
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				worker, err := svc.Workers.Update(id, &req)
				if err != nil {
					return nil, err
				}
				return *worker, nil
			},
		},
		"deleteWorker": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodDelete); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				if err := svc.Workers.Delete(id); err != nil {
					return nil, err
				}
				return true, nil
			},
		},

		"addTask": &graphql.Field{
			Type: types.task,
			Args: graphql.FieldConfigArgument{
				"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"description": &graphql.ArgumentConfig{Type: graphql.String},
				"type":        &graphql.ArgumentConfig{Type: graphql.String},
				"deadline":    &graphql.ArgumentConfig{Type: graphql.DateTime},
				"client_id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"worker_id":   &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPost); err != nil {
					return nil, err
				}
				clientID, err := idArg(p.Args, "client_id")
				if err != nil {
					return nil, err
				}
				workerID, err := idPtrArg(p.Args, "worker_id")
				if err != nil {
					return nil, err
				}
				req := dto.CreateTaskRequest{
					Name:        strArg(p.Args, "name"),
					Description: strArg(p.Args, "description"),
					Type:        strArg(p.Args, "type"),
					Deadline:    timePtrArg(p.Args, "deadline"),
					ClientID:    clientID,
					WorkerID:    workerID,
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				task, err := svc.Tasks.Create(&req)
				if err != nil {
					return nil, err
				}
				return *task, nil
			},
		},
		"updateTask": &graphql.Field{
			Type: types.task,
			Args: graphql.FieldConfigArgument{
				"id":                     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"name":                   &graphql.ArgumentConfig{Type: graphql.String},
				"description":            &graphql.ArgumentConfig{Type: graphql.String},
				"type":                   &graphql.ArgumentConfig{Type: graphql.String},
				"status":                 &graphql.ArgumentConfig{Type: graphql.String},
				"deadline":               &graphql.ArgumentConfig{Type: graphql.DateTime},
				"submitted_at":           &graphql.ArgumentConfig{Type: graphql.DateTime},
				"client_payment_decided": &graphql.ArgumentConfig{Type: graphql.Boolean},
				"client_payment_made":    &graphql.ArgumentConfig{Type: graphql.Boolean},
				"worker_payment_decided": &graphql.ArgumentConfig{Type: graphql.Boolean},
				"worker_payment_made":    &graphql.ArgumentConfig{Type: graphql.Boolean},
				"client_id":              &graphql.ArgumentConfig{Type: graphql.String},
				"worker_id":              &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPut); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				clientID, err := idPtrArg(p.Args, "client_id")
				if err != nil {
					return nil, err
				}
				workerID, err := idPtrArg(p.Args, "worker_id")
				if err != nil {
					return nil, err
				}
				req := dto.UpdateTaskRequest{
					Name:                 strPtrArg(p.Args, "name"),
					Description:          strPtrArg(p.Args, "description"),
					Type:                 strPtrArg(p.Args, "type"),
					Status:               strPtrArg(p.Args, "status"),
					Deadline:             timePtrArg(p.Args, "deadline"),
					SubmittedAt:          timePtrArg(p.Args, "submitted_at"),
					ClientPaymentDecided: boolPtrArg(p.Args, "client_payment_decided"),
					ClientPaymentMade:    boolPtrArg(p.Args, "client_payment_made"),
					WorkerPaymentDecided: boolPtrArg(p.Args, "worker_payment_decided"),
					WorkerPaymentMade:    boolPtrArg(p.Args, "worker_payment_made"),
					ClientID:             clientID,
					WorkerID:             workerID,
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				task, err := svc.Tasks.Update(id, &req)
				if err != nil {
					return nil, err
				}
				return *task, nil
			},
		},
		"deleteTask": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodDelete); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				if err := svc.Tasks.Delete(id); err != nil {
					return nil, err
				}
				return true, nil
			},
		},
		"assignWorker": &graphql.Field{
			Type: types.task,
			Args: graphql.FieldConfigArgument{
				"task_id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"worker_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPost); err != nil {
					return nil, err
				}
				taskID, err := idArg(p.Args, "task_id")
				if err != nil {
					return nil, err
				}
				workerID, err := idArg(p.Args, "worker_id")
				if err != nil {
					return nil, err
				}
				req := dto.AssignTaskRequest{TaskID: taskID, WorkerID: workerID}
				task, err := svc.Tasks.Assign(&req)
				if err != nil {
					return nil, err
				}
				return *task, nil
			},
		},

		"addUser": &graphql.Field{
			Type: types.user,
			Args: graphql.FieldConfigArgument{
				"name":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":        &graphql.ArgumentConfig{Type: graphql.String},
				"phone_number": &graphql.ArgumentConfig{Type: graphql.String},
				"username":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"role":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPost); err != nil {
					return nil, err
				}
				req := dto.CreateUserRequest{
					Name:        strArg(p.Args, "name"),
					Email:       strArg(p.Args, "email"),
					PhoneNumber: strArg(p.Args, "phone_number"),
					Username:    strArg(p.Args, "username"),
					Password:    strArg(p.Args, "password"),
					Role:        strArg(p.Args, "role"),
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				user, err := svc.Users.Create(&req)
				if err != nil {
					return nil, err
				}
				return *user, nil
			},
		},
		"updateUser": &graphql.Field{
			Type: types.user,
			Args: graphql.FieldConfigArgument{
				"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"name":         &graphql.ArgumentConfig{Type: graphql.String},
				"email":        &graphql.ArgumentConfig{Type: graphql.String},
				"phone_number": &graphql.ArgumentConfig{Type: graphql.String},
				"username":     &graphql.ArgumentConfig{Type: graphql.String},
				"password":     &graphql.ArgumentConfig{Type: graphql.String},
				"role":         &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodPut); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				req := dto.UpdateUserRequest{
					Name:        strPtrArg(p.Args, "name"),
					Email:       strPtrArg(p.Args, "email"),
					PhoneNumber: strPtrArg(p.Args, "phone_number"),
					Username:    strPtrArg(p.Args, "username"),
					Password:    strPtrArg(p.Args, "password"),
					Role:        strPtrArg(p.Args, "role"),
				}
				if err := dto.Validate(&req); err != nil {
					return nil, err
				}
				user, err := svc.Users.Update(id, &req)
				if err != nil {
					return nil, err
				}
				return *user, nil
			},
		},
		"deleteUser": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireMethod(p.Context, fiber.MethodDelete); err != nil {
					return nil, err
				}
				id, err := idArg(p.Args, "id")
				if err != nil {
					return nil, err
				}
				if err := svc.Users.Delete(id); err != nil {
					return nil, err
				}
				return true, nil
			},
		},
	}
}
