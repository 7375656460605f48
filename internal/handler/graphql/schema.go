package graphql

import (
	"errors"
	"strconv"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/service"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/internal/utils"
	"github.com/personalab/persona-board/models"
)

// resolver carries the dependencies shared by every field resolver.
// Request-scoped loggers come from the context, not from here.
type resolver struct {
	services *service.Services
}

// errInternal is the only message low-level failures are allowed to
// surface through the API; the real error stays in the server log.
var errInternal = errors.New("internal server error")

var errNotAuthenticated = errors.New("Not authenticated")

// uploadScalar passes the file key assigned by the multipart middleware
// through argument coercion untouched. The uploadFile resolver exchanges
// the key for the open file stored in the request context.
var uploadScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Upload",
	Description: "A file attached via a multipart request.",
	Serialize: func(value interface{}) interface{} {
		return value
	},
	ParseValue: func(value interface{}) interface{} {
		return value
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		// files can only arrive through variables
		return nil
	},
})

func newSchema(rs *resolver) (graphql.Schema, error) {
	fileType := graphql.NewObject(graphql.ObjectConfig{
		Name: "File",
		Fields: graphql.Fields{
			"url": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	personaType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Persona",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"user_id":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"quote":       &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"attitudes":   &graphql.Field{Type: graphql.String},
			"pain_points": &graphql.Field{Type: graphql.String},
			"jobs_needs":  &graphql.Field{Type: graphql.String},
			"activities":  &graphql.Field{Type: graphql.String},
			"avatar_url":  &graphql.Field{Type: graphql.String},
			"created_at": &graphql.Field{
				Type:    graphql.String,
				Resolve: personaTimeResolver(func(p *models.Persona) time.Time { return p.CreatedAt }),
			},
			"last_updated": &graphql.Field{
				Type:    graphql.String,
				Resolve: personaTimeResolver(func(p *models.Persona) time.Time { return p.LastUpdated }),
			},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	optionalPersonaTextArgs := func(extra graphql.FieldConfigArgument) graphql.FieldConfigArgument {
		args := graphql.FieldConfigArgument{
			"quote":       &graphql.ArgumentConfig{Type: graphql.String},
			"description": &graphql.ArgumentConfig{Type: graphql.String},
			"attitudes":   &graphql.ArgumentConfig{Type: graphql.String},
			"pain_points": &graphql.ArgumentConfig{Type: graphql.String},
			"jobs_needs":  &graphql.ArgumentConfig{Type: graphql.String},
			"activities":  &graphql.ArgumentConfig{Type: graphql.String},
			"avatar_url":  &graphql.ArgumentConfig{Type: graphql.String},
		}
		for name, cfg := range extra {
			args[name] = cfg
		}
		return args
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: rs.users,
			},
			"personas": &graphql.Field{
				Type:    graphql.NewList(personaType),
				Resolve: rs.personas,
			},
			"persona": &graphql.Field{
				Type: personaType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: rs.persona,
			},
			"loggedInUser": &graphql.Field{
				Type:    userType,
				Resolve: rs.loggedInUser,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"uploadFile": &graphql.Field{
				Type: graphql.NewNonNull(fileType),
				Args: graphql.FieldConfigArgument{
					"file": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uploadScalar)},
				},
				Resolve: rs.uploadFile,
			},
			"signup": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: rs.signup,
			},
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: rs.login,
			},
			"addPersona": &graphql.Field{
				Type: personaType,
				Args: optionalPersonaTextArgs(graphql.FieldConfigArgument{
					"user_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				}),
				Resolve: rs.addPersona,
			},
			"updatePersona": &graphql.Field{
				Type: personaType,
				Args: optionalPersonaTextArgs(graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name": &graphql.ArgumentConfig{Type: graphql.String},
				}),
				Resolve: rs.updatePersona,
			},
			"deletePersona": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: rs.deletePersona,
			},
			"deleteAllPersonas": &graphql.Field{
				Type:    graphql.Boolean,
				Resolve: rs.deleteAllPersonas,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func (rs *resolver) users(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	users, err := rs.services.AuthService.Users(p.Context)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, errInternal
	}
	return users, nil
}

func (rs *resolver) personas(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	personas, err := rs.services.PersonaService.List(p.Context)
	if err != nil {
		log.Err(err).Msg("listing personas failed")
		return nil, errInternal
	}
	return personas, nil
}

func (rs *resolver) persona(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	persona, err := rs.services.PersonaService.Get(p.Context, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("persona lookup failed")
		return nil, errInternal
	}
	if persona == nil {
		return nil, nil
	}
	return persona, nil
}

func (rs *resolver) loggedInUser(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	userID, ok := utils.GetUserIDFromContext(p.Context)
	if !ok {
		return nil, errNotAuthenticated
	}

	user, err := rs.services.AuthService.UserByID(p.Context, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, errNotAuthenticated
		}
		log.Err(err).Int64("id", userID).Msg("logged-in user lookup failed")
		return nil, errInternal
	}
	return user, nil
}

func (rs *resolver) uploadFile(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	key, _ := p.Args["file"].(string)
	file, ok := uploadFromContext(p.Context, key)
	if !ok {
		return nil, errors.New("no file attached to the request")
	}

	stored, err := rs.services.UploadService.Store(p.Context, file.Content, file.Filename)
	if err != nil {
		log.Err(err).Str("filename", file.Filename).Msg("storing upload failed")
		return nil, errInternal
	}

	log.Debug().Str("key", stored.Key).Msg("file uploaded")
	return stored, nil
}

func (rs *resolver) signup(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	name, _ := p.Args["name"].(string)
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	user, err := rs.services.AuthService.SignUp(p.Context, name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			return nil, errors.New("name, email and password are required")
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return nil, errors.New("email already exists")
		default:
			log.Err(err).Msg("signup failed")
			return nil, errInternal
		}
	}

	return rs.authPayload(p, user)
}

func (rs *resolver) login(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	user, err := rs.services.AuthService.Login(p.Context, email, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return nil, errors.New("User not found!")
		case errors.Is(err, service.ErrWrongPassword):
			return nil, errors.New("Invalid credentials!")
		default:
			log.Err(err).Msg("login failed")
			return nil, errInternal
		}
	}

	return rs.authPayload(p, user)
}

func (rs *resolver) authPayload(p graphql.ResolveParams, user models.User) (interface{}, error) {
	log := logger.FromContext(p.Context)

	token, err := rs.services.AuthService.CreateToken(p.Context, user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("token creation failed")
		return nil, errInternal
	}

	return models.AuthPayload{Token: token.SignedString, User: user}, nil
}

func (rs *resolver) addPersona(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	userID, _ := p.Args["user_id"].(int)
	name, _ := p.Args["name"].(string)

	persona := models.Persona{
		UserID:      int64(userID),
		Name:        name,
		Quote:       optString(p.Args, "quote"),
		Description: optString(p.Args, "description"),
		Attitudes:   optString(p.Args, "attitudes"),
		PainPoints:  optString(p.Args, "pain_points"),
		JobsNeeds:   optString(p.Args, "jobs_needs"),
		Activities:  optString(p.Args, "activities"),
		AvatarURL:   optString(p.Args, "avatar_url"),
	}

	created, err := rs.services.PersonaService.Create(p.Context, persona)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			return nil, errors.New("user_id and name are required")
		}
		log.Err(err).Msg("creating persona failed")
		return nil, errInternal
	}
	return created, nil
}

func (rs *resolver) updatePersona(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	patch := models.PersonaPatch{
		Name:        optString(p.Args, "name"),
		Quote:       optString(p.Args, "quote"),
		Description: optString(p.Args, "description"),
		Attitudes:   optString(p.Args, "attitudes"),
		PainPoints:  optString(p.Args, "pain_points"),
		JobsNeeds:   optString(p.Args, "jobs_needs"),
		Activities:  optString(p.Args, "activities"),
		AvatarURL:   optString(p.Args, "avatar_url"),
	}

	updated, err := rs.services.PersonaService.Update(p.Context, id, patch)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("updating persona failed")
		return nil, errInternal
	}
	if updated == nil {
		return nil, nil
	}
	return updated, nil
}

func (rs *resolver) deletePersona(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromContext(p.Context)

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	deleted, err := rs.services.PersonaService.Delete(p.Context, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("deleting persona failed")
		return nil, errInternal
	}
	return deleted, nil
}

func (rs *resolver) deleteAllPersonas(p graphql.ResolveParams) (interface{}, error) {
	if err := rs.services.PersonaService.DeleteAll(p.Context); err != nil {
		return nil, err
	}
	return true, nil
}

func personaTimeResolver(pick func(*models.Persona) time.Time) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		switch v := p.Source.(type) {
		case models.Persona:
			return pick(&v).Format(time.RFC3339), nil
		case *models.Persona:
			if v == nil {
				return nil, nil
			}
			return pick(v).Format(time.RFC3339), nil
		}
		return nil, nil
	}
}

// parseID accepts the loosely typed forms an ID argument arrives in and
// normalizes them to int64.
func parseID(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errors.New("id must be an integer")
		}
		return id, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	}
	return 0, errors.New("id must be an integer")
}

func optString(args map[string]interface{}, key string) *string {
	value, ok := args[key].(string)
	if !ok {
		return nil
	}
	return &value
}
