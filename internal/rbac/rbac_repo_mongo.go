package rbac

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository struct {
	roles         *mongo.Collection
	groups        *mongo.Collection
	categories    *mongo.Collection
	rolePerms     *mongo.Collection
	employeeRoles *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		roles:         db.Collection("roles"),
		groups:        db.Collection("permission_groups"),
		categories:    db.Collection("permission_categories"),
		rolePerms:     db.Collection("role_permissions"),
		employeeRoles: db.Collection("employee_roles"),
	}
}

func (r *mongoRepository) ListPolicyRows(ctx context.Context) ([]PolicyRow, error) {
	cur, err := r.rolePerms.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var perms []RolePermission
	if err := cur.All(ctx, &perms); err != nil {
		return nil, err
	}

	// The relational branch joins; here we resolve category codes with a
	// second lookup to keep the two result sets equivalent.
	catCur, err := r.categories.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	defer catCur.Close(ctx)

	var categories []PermissionCategory
	if err := catCur.All(ctx, &categories); err != nil {
		return nil, err
	}

	catByID := make(map[string]PermissionCategory, len(categories))
	for _, c := range categories {
		catByID[c.ID] = c
	}

	grants := make([]grantRow, 0, len(perms))
	for _, p := range perms {
		cat, ok := catByID[p.PermCategoryID]
		if !ok {
			continue
		}
		grants = append(grants, grantRow{
			RoleID:       p.RoleID,
			Code:         cat.Code,
			CanView:      p.CanView,
			CanAdd:       p.CanAdd,
			CanEdit:      p.CanEdit,
			CanDelete:    p.CanDelete,
			EnableView:   cat.EnableView,
			EnableAdd:    cat.EnableAdd,
			EnableEdit:   cat.EnableEdit,
			EnableDelete: cat.EnableDelete,
		})
	}

	return expandGrants(grants), nil
}

func (r *mongoRepository) ListGroupingRows(ctx context.Context) ([]GroupingRow, error) {
	cur, err := r.employeeRoles.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ers []EmployeeRole
	if err := cur.All(ctx, &ers); err != nil {
		return nil, err
	}

	roleCur, err := r.roles.Find(ctx, bson.M{"is_active": true, "deleted_at": nil})
	if err != nil {
		return nil, err
	}
	defer roleCur.Close(ctx)

	var roles []Role
	if err := roleCur.All(ctx, &roles); err != nil {
		return nil, err
	}

	activeRoles := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		activeRoles[role.ID] = struct{}{}
	}

	var rows []GroupingRow
	for _, er := range ers {
		if _, ok := activeRoles[er.RoleID]; ok {
			rows = append(rows, GroupingRow{EmployeeID: er.EmployeeID, RoleID: er.RoleID})
		}
	}

	return rows, nil
}

func (r *mongoRepository) ListRoles(ctx context.Context) ([]Role, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.roles.Find(ctx, bson.M{"deleted_at": nil}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var roles []Role
	if err := cur.All(ctx, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *mongoRepository) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	var role Role
	err := r.roles.FindOne(ctx, bson.M{"_id": id, "deleted_at": nil}).Decode(&role)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *mongoRepository) CreateRole(ctx context.Context, role *Role) error {
	now := time.Now().UTC()
	role.CreatedAt = now
	role.UpdatedAt = now
	_, err := r.roles.InsertOne(ctx, role)
	return err
}

func (r *mongoRepository) UpdateRole(ctx context.Context, role *Role) error {
	role.UpdatedAt = time.Now().UTC()
	_, err := r.roles.ReplaceOne(ctx, bson.M{"_id": role.ID}, role)
	return err
}

func (r *mongoRepository) SoftDeleteRole(ctx context.Context, id string) error {
	_, err := r.roles.UpdateOne(ctx,
		bson.M{"_id": id, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}},
	)
	return err
}

func (r *mongoRepository) ListGroups(ctx context.Context) ([]PermissionGroup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.groups.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []PermissionGroup
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *mongoRepository) ListCategories(ctx context.Context, groupID string) ([]PermissionCategory, error) {
	filter := bson.M{"is_active": true}
	if groupID != "" {
		filter["perm_group_id"] = groupID
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.categories.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var categories []PermissionCategory
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *mongoRepository) GetCategoryByID(ctx context.Context, id string) (*PermissionCategory, error) {
	var category PermissionCategory
	err := r.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *mongoRepository) ListRolePermissions(ctx context.Context, roleID string) ([]RolePermission, error) {
	cur, err := r.rolePerms.Find(ctx, bson.M{"role_id": roleID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var perms []RolePermission
	if err := cur.All(ctx, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *mongoRepository) ReplaceRolePermissions(ctx context.Context, roleID string, perms []RolePermission) error {
	if _, err := r.rolePerms.DeleteMany(ctx, bson.M{"role_id": roleID}); err != nil {
		return err
	}
	if len(perms) == 0 {
		return nil
	}

	docs := make([]interface{}, len(perms))
	now := time.Now().UTC()
	for i := range perms {
		perms[i].CreatedAt = now
		perms[i].UpdatedAt = now
		docs[i] = perms[i]
	}
	_, err := r.rolePerms.InsertMany(ctx, docs)
	return err
}

func (r *mongoRepository) CreateEmployeeRole(ctx context.Context, er *EmployeeRole) error {
	now := time.Now().UTC()
	er.CreatedAt = now
	er.UpdatedAt = now
	_, err := r.employeeRoles.InsertOne(ctx, er)
	return err
}

func (r *mongoRepository) DeleteEmployeeRole(ctx context.Context, id string) error {
	_, err := r.employeeRoles.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *mongoRepository) ListEmployeeRoles(ctx context.Context, employeeID string) ([]EmployeeRole, error) {
	cur, err := r.employeeRoles.Find(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ers []EmployeeRole
	if err := cur.All(ctx, &ers); err != nil {
		return nil, err
	}
	return ers, nil
}
