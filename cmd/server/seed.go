package main

import (
	"fmt"

	"wms/internal/models"
	"wms/pkg/logger"

	"gorm.io/gorm"
)

// seedData 初始化种子数据：管理员账号、管理员角色、菜单与授权
func seedData(db *gorm.DB) error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting seed data initialization...")

	admin, err := createDefaultAdmin(db)
	if err != nil {
		return fmt.Errorf("创建默认管理员失败: %v", err)
	}

	adminRole, err := createAdminRole(db)
	if err != nil {
		return fmt.Errorf("创建管理员角色失败: %v", err)
	}

	if err := initializeMenus(db, adminRole); err != nil {
		return fmt.Errorf("初始化菜单失败: %v", err)
	}

	if err := assignAdminRole(db, admin, adminRole); err != nil {
		return fmt.Errorf("分配管理员角色失败: %v", err)
	}

	appLogger.Info("Seed data initialization completed successfully")
	return nil
}

// createDefaultAdmin 创建默认管理员用户
func createDefaultAdmin(db *gorm.DB) (*models.User, error) {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		logger.GetLogger().Info("默认管理员已存在，跳过创建")
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	user := &models.User{
		Username: "admin",
		Nickname: "系统管理员",
		Status:   models.UserStatusEnabled,
	}
	// 默认密码仅用于首次部署，上线后必须修改
	if err := user.SetPassword("admin123"); err != nil {
		return nil, err
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}

	logger.GetLogger().Info("默认管理员创建成功")
	return user, nil
}

// createAdminRole 创建管理员角色
func createAdminRole(db *gorm.DB) (*models.Role, error) {
	var existing models.Role
	err := db.Where("code = ?", models.RoleAdmin).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	role := &models.Role{Code: models.RoleAdmin, Name: "系统管理员"}
	if err := db.Create(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

// initializeMenus 初始化主档管理菜单树并授权给管理员角色
func initializeMenus(db *gorm.DB, adminRole *models.Role) error {
	var count int64
	db.Model(&models.Menu{}).Count(&count)
	if count > 0 {
		logger.GetLogger().Info("菜单已存在，跳过初始化")
		return nil
	}

	intPtr := func(v int) *int { return &v }

	root := &models.Menu{
		Title: "主档管理",
		Path:  "/masterdata",
		Type:  models.MenuTypeDir,
		Sort:  intPtr(1),
		Icon:  "database",
	}
	if err := db.Create(root).Error; err != nil {
		return err
	}

	ownerMenu := &models.Menu{
		ParentID:  &root.ID,
		Title:     "货主管理",
		Path:      "/masterdata/owners",
		Component: "masterdata/owner/index",
		Type:      models.MenuTypeMenu,
		Sort:      intPtr(1),
		Icon:      "user",
	}
	if err := db.Create(ownerMenu).Error; err != nil {
		return err
	}

	buttons := []*models.Menu{
		{ParentID: &ownerMenu.ID, Title: "货主查询", Type: models.MenuTypeButton, Permission: "owner:list", Sort: intPtr(1)},
		{ParentID: &ownerMenu.ID, Title: "货主详情", Type: models.MenuTypeButton, Permission: "owner:read", Sort: intPtr(2)},
		{ParentID: &ownerMenu.ID, Title: "货主新增", Type: models.MenuTypeButton, Permission: "owner:create", Sort: intPtr(3)},
		{ParentID: &ownerMenu.ID, Title: "货主修改", Type: models.MenuTypeButton, Permission: "owner:update", Sort: intPtr(4)},
		{ParentID: &ownerMenu.ID, Title: "货主删除", Type: models.MenuTypeButton, Permission: "owner:delete", Sort: intPtr(5)},
	}
	if err := db.Create(&buttons).Error; err != nil {
		return err
	}

	// 管理员角色授权全部菜单
	grants := []*models.RoleMenu{
		{RoleID: adminRole.ID, MenuID: root.ID},
		{RoleID: adminRole.ID, MenuID: ownerMenu.ID},
	}
	for _, button := range buttons {
		grants = append(grants, &models.RoleMenu{RoleID: adminRole.ID, MenuID: button.ID})
	}
	if err := db.Create(&grants).Error; err != nil {
		return err
	}

	logger.GetLogger().Info("菜单初始化完成")
	return nil
}

// assignAdminRole 给管理员用户绑定管理员角色
func assignAdminRole(db *gorm.DB, admin *models.User, role *models.Role) error {
	var count int64
	db.Model(&models.UserRole{}).Where("user_id = ? AND role_id = ?", admin.ID, role.ID).Count(&count)
	if count > 0 {
		return nil
	}
	return db.Create(&models.UserRole{UserID: admin.ID, RoleID: role.ID}).Error
}
