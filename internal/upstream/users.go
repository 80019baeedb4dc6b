package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/beatystore/admin-gateway/internal/models"
)

// Users fetches the full admin user list.
func (c *Client) Users(ctx context.Context, token string) ([]models.User, error) {
	env, err := c.get(ctx, token, "/api/User/GetAllUserAdmin", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.User](env, "/api/User/GetAllUserAdmin")
}

// UserInfo fetches the profile of the token's owner. The session layer uses
// this both to validate a token at login and to refresh the operator record.
func (c *Client) UserInfo(ctx context.Context, token string) (models.Profile, error) {
	env, err := c.get(ctx, token, "/api/User/GetUserInfo", nil)
	if err != nil {
		return models.Profile{}, err
	}
	return decode[models.Profile](env, "/api/User/GetUserInfo")
}

// DeleteUser removes a user account by id.
func (c *Client) DeleteUser(ctx context.Context, token string, userID int) error {
	q := url.Values{"UserID": {strconv.Itoa(userID)}}
	_, err := c.call(ctx, token, http.MethodDelete, "/api/User/DeleteUser/", q, "", nil)
	return err
}

// SetRole assigns one of the three fixed roles to a user. Each role has its
// own upstream endpoint.
func (c *Client) SetRole(ctx context.Context, token string, userID int, role models.Role) error {
	var path string
	switch role {
	case models.RoleAdmin:
		path = "/api/User/SetAdminRole"
	case models.RoleStaff:
		path = "/api/User/SetStaffRole"
	case models.RoleCustomer:
		path = "/api/User/SetCustomerRole"
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	q := url.Values{"UserID": {strconv.Itoa(userID)}}
	_, err := c.call(ctx, token, http.MethodPost, path, q, "", nil)
	return err
}
