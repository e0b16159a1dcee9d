package graphql

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"gorm.io/datatypes"

	"github.com/jobsync-app/jobsync-backend/internal/models"
)

// entityTypes holds the output types shared by queries and mutations.
type entityTypes struct {
	institute *graphql.Object
	client    *graphql.Object
	worker    *graphql.Object
	task      *graphql.Object
	user      *graphql.Object

	institutePage *graphql.Object
	clientPage    *graphql.Object
	workerPage    *graphql.Object
	taskPage      *graphql.Object
	userPage      *graphql.Object
}

// jsonString serializes the opaque metadata blob as a JSON string.
func jsonString(m datatypes.JSON) interface{} {
	if len(m) == 0 {
		return nil
	}
	return string(m)
}

// optionalID unwraps a nullable reference column.
func optionalID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}

func pageType(name string, item *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			"data":  &graphql.Field{Type: graphql.NewList(item)},
			"total": &graphql.Field{Type: graphql.Int},
			"page":  &graphql.Field{Type: graphql.Int},
			"limit": &graphql.Field{Type: graphql.Int},
		},
	})
}

func newTypes() *entityTypes {
	t := &entityTypes{}

	t.institute = graphql.NewObject(graphql.ObjectConfig{
		Name: "Institute",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.String},
			"name":    &graphql.Field{Type: graphql.String},
			"country": &graphql.Field{Type: graphql.String},
			"metadata": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				inst, _ := p.Source.(models.Institute)
				return jsonString(inst.Metadata), nil
			}},
			"created_at": &graphql.Field{Type: graphql.DateTime},
			"updated_at": &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.client = graphql.NewObject(graphql.ObjectConfig{
		Name: "Client",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.String},
			"name":         &graphql.Field{Type: graphql.String},
			"country":      &graphql.Field{Type: graphql.String},
			"phone_number": &graphql.Field{Type: graphql.String},
			"email":        &graphql.Field{Type: graphql.String},
			"currency":     &graphql.Field{Type: graphql.String},
			"institute_id": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				client, _ := p.Source.(models.Client)
				return optionalID(client.InstituteID), nil
			}},
			"metadata": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				client, _ := p.Source.(models.Client)
				return jsonString(client.Metadata), nil
			}},
			"created_at": &graphql.Field{Type: graphql.DateTime},
			"updated_at": &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.worker = graphql.NewObject(graphql.ObjectConfig{
		Name: "Worker",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.String},
			"name":         &graphql.Field{Type: graphql.String},
			"country":      &graphql.Field{Type: graphql.String},
			"phone_number": &graphql.Field{Type: graphql.String},
			"email":        &graphql.Field{Type: graphql.String},
			"currency":     &graphql.Field{Type: graphql.String},
			"institute_id": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				worker, _ := p.Source.(models.Worker)
				return optionalID(worker.InstituteID), nil
			}},
			"specialties": &graphql.Field{Type: graphql.NewList(graphql.String)},
			"metadata": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				worker, _ := p.Source.(models.Worker)
				return jsonString(worker.Metadata), nil
			}},
			"created_at": &graphql.Field{Type: graphql.DateTime},
			"updated_at": &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.task = graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id":                     &graphql.Field{Type: graphql.String},
			"name":                   &graphql.Field{Type: graphql.String},
			"description":            &graphql.Field{Type: graphql.String},
			"type":                   &graphql.Field{Type: graphql.String},
			"status":                 &graphql.Field{Type: graphql.String},
			"deadline":               &graphql.Field{Type: graphql.DateTime},
			"submitted_at":           &graphql.Field{Type: graphql.DateTime},
			"client_payment_decided": &graphql.Field{Type: graphql.Boolean},
			"client_payment_made":    &graphql.Field{Type: graphql.Boolean},
			"worker_payment_decided": &graphql.Field{Type: graphql.Boolean},
			"worker_payment_made":    &graphql.Field{Type: graphql.Boolean},
			"client_id":              &graphql.Field{Type: graphql.String},
			"worker_id": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				task, _ := p.Source.(models.Task)
				return optionalID(task.WorkerID), nil
			}},
			"metadata": &graphql.Field{Type: graphql.String, Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				task, _ := p.Source.(models.Task)
				return jsonString(task.Metadata), nil
			}},
			"created_at": &graphql.Field{Type: graphql.DateTime},
			"updated_at": &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.String},
			"name":         &graphql.Field{Type: graphql.String},
			"email":        &graphql.Field{Type: graphql.String},
			"phone_number": &graphql.Field{Type: graphql.String},
			"username":     &graphql.Field{Type: graphql.String},
			"role":         &graphql.Field{Type: graphql.String},
			"created_at":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.institutePage = pageType("InstitutePage", t.institute)
	t.clientPage = pageType("ClientPage", t.client)
	t.workerPage = pageType("WorkerPage", t.worker)
	t.taskPage = pageType("TaskPage", t.task)
	t.userPage = pageType("UserPage", t.user)

	return t
}
