package controllers

import (
	"net/http"

	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/app/services"
	"github.com/launchbase/launchbase/pkg/bind"
	"github.com/launchbase/launchbase/pkg/middleware"
	"github.com/launchbase/launchbase/pkg/response"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

type registerRequest struct {
	FirstName string  `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string  `json:"lastName"  validate:"required,min=2,max=100"`
	Email     string  `json:"email"     validate:"required,email"`
	Password  string  `json:"password"  validate:"required,min=8,max=72"`
	Phone     *string `json:"phone"`
	Address   string  `json:"address"`
	ZipCode   *string `json:"zipCode"`
	Role      string  `json:"role"      validate:"nullable,in=learner,founder,existing_founder,other,admin"`
}

func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Register(r.Context(), services.CreateUserInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Phone:     body.Phone,
		Address:   body.Address,
		ZipCode:   body.ZipCode,
		Role:      body.Role,
	})
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, "User registered successfully", user)
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, refresh, err := c.service.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Login successful", map[string]interface{}{
		"user":         user,
		"token":        token,
		"refreshToken": refresh,
	})
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, pagination, err := c.service.List(r.Context(), repositories.UserListParams{
		Page:      queryInt(r, "page", 0),
		Limit:     queryInt(r, "limit", 0),
		Role:      q.Get("role"),
		Approval:  q.Get("isApproved"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, "Users retrieved successfully", users, pagination)
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid user id")
		return
	}

	user, err := c.service.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "User retrieved successfully", user)
}

type updateUserRequest struct {
	FirstName  *string `json:"firstName"  validate:"nullable,min=2,max=100"`
	LastName   *string `json:"lastName"   validate:"nullable,min=2,max=100"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	ZipCode    *string `json:"zipCode"`
	ProfilePic *string `json:"profilePic" validate:"nullable,url"`
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid user id")
		return
	}

	callerID, _ := middleware.UserIDFromCtx(r)
	callerRole, _ := middleware.RoleFromCtx(r)

	var body updateUserRequest
	present, errs, err := bind.Patch(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Update(r.Context(), id, services.UserPatch{
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Address:       body.Address,
		Phone:         body.Phone,
		PhoneSet:      present["phone"],
		ZipCode:       body.ZipCode,
		ZipCodeSet:    present["zipCode"],
		ProfilePic:    body.ProfilePic,
		ProfilePicSet: present["profilePic"],
	}, callerID, callerRole)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "User updated successfully", user)
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid user id")
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "User deleted successfully", nil)
}

type approvalRequest struct {
	IsApproved string `json:"isApproved" validate:"required,in=pending,approved,rejected"`
}

func (c *UserController) SetApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid user id")
		return
	}

	var body approvalRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.SetApproval(r.Context(), id, body.IsApproved)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Approval status updated", user)
}
