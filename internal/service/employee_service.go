package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"bankoffice/internal/model"
	"bankoffice/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EmployeeService struct {
	db           *gorm.DB
	userRepo     *repository.UserRepository
	employeeRepo *repository.EmployeeRepository
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		employeeRepo: repository.NewEmployeeRepository(db),
	}
}

type CreateEmployeeRequest struct {
	Username         string          `json:"username" binding:"required"`
	Password         string          `json:"password" binding:"required"`
	Code             string          `json:"code" binding:"required"`
	FullName         string          `json:"full_name" binding:"required"`
	MaritalStatus    string          `json:"marital_status" binding:"required"`
	IdentityDocument string          `json:"identity_document" binding:"required"`
	BirthDate        string          `json:"birth_date" binding:"required"`
	Age              int             `json:"age" binding:"required"`
	AddressStreet    string          `json:"address_street"`
	AddressHouse     string          `json:"address_house"`
	AddressCity      string          `json:"address_city"`
	AddressState     string          `json:"address_state"`
	Position         string          `json:"position" binding:"required"`
	Department       string          `json:"department" binding:"required"`
	Salary           decimal.Decimal `json:"salary"`
	Profession       string          `json:"profession"`
	Emails           string          `json:"emails"`
	Phones           string          `json:"phones"`
}

func validateEmployeeInput(req *CreateEmployeeRequest) error {
	if !lenBetween(req.Username, 3, 50) {
		return newValidationError("用户名长度必须在 3 到 50 个字符之间")
	}
	if !lenBetween(req.Password, 6, 100) {
		return newValidationError("密码长度必须在 6 到 100 个字符之间")
	}
	if !lenBetween(req.Code, 3, 20) {
		return newValidationError("员工工号长度必须在 3 到 20 个字符之间")
	}
	if !lenBetween(req.FullName, 3, 100) {
		return newValidationError("姓名长度必须在 3 到 100 个字符之间")
	}
	if !model.ValidMaritalStatus(req.MaritalStatus) {
		return newValidationError("婚姻状况必须是 single、married、divorced 或 widowed")
	}
	if !lenBetween(req.IdentityDocument, 5, 20) {
		return newValidationError("证件号长度必须在 5 到 20 个字符之间")
	}
	if !validDate(req.BirthDate) {
		return newValidationError("出生日期格式必须为 YYYY-MM-DD")
	}
	if req.Age < 18 || req.Age > 100 {
		return newValidationError("年龄必须在 18 到 100 之间")
	}
	if !lenBetween(req.Position, 3, 50) {
		return newValidationError("职位长度必须在 3 到 50 个字符之间")
	}
	if !lenBetween(req.Department, 3, 50) {
		return newValidationError("部门长度必须在 3 到 50 个字符之间")
	}
	if !req.Salary.IsPositive() || !decimalBetween(req.Salary, "0", "999999.99") {
		return newValidationError("薪资必须是 0 到 999999.99 之间的正数")
	}
	if !optionalLenBetween(req.AddressStreet, 3, 100) {
		return newValidationError("街道长度必须在 3 到 100 个字符之间")
	}
	if !optionalLenBetween(req.AddressHouse, 1, 20) {
		return newValidationError("门牌号长度必须在 1 到 20 个字符之间")
	}
	if !optionalLenBetween(req.AddressCity, 3, 50) {
		return newValidationError("城市长度必须在 3 到 50 个字符之间")
	}
	if !optionalLenBetween(req.AddressState, 3, 50) {
		return newValidationError("省/州长度必须在 3 到 50 个字符之间")
	}
	if !optionalLenBetween(req.Profession, 3, 100) {
		return newValidationError("专业长度必须在 3 到 100 个字符之间")
	}
	if !optionalLenBetween(req.Emails, 5, 255) {
		return newValidationError("邮箱长度必须在 5 到 255 个字符之间")
	}
	if !optionalLenBetween(req.Phones, 5, 50) {
		return newValidationError("电话长度必须在 5 到 50 个字符之间")
	}
	return nil
}

// Create 登记员工，登录账号与员工档案在同一事务内写入
func (s *EmployeeService) Create(ctx context.Context, req *CreateEmployeeRequest) (*model.Employee, error) {
	if err := validateEmployeeInput(req); err != nil {
		return nil, err
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码摘要失败: %w", err)
	}

	employee := &model.Employee{
		Code:             req.Code,
		FullName:         req.FullName,
		MaritalStatus:    req.MaritalStatus,
		IdentityDocument: req.IdentityDocument,
		BirthDate:        req.BirthDate,
		Age:              req.Age,
		AddressStreet:    req.AddressStreet,
		AddressHouse:     req.AddressHouse,
		AddressCity:      req.AddressCity,
		AddressState:     req.AddressState,
		Position:         req.Position,
		Department:       req.Department,
		Salary:           req.Salary,
		Profession:       req.Profession,
		Emails:           req.Emails,
		Phones:           req.Phones,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := &model.User{
			Username:     req.Username,
			PasswordHash: passwordHash,
			Role:         model.RoleEmployee,
			IsActive:     true,
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newValidationError("用户名已被使用")
			}
			return fmt.Errorf("创建登录账号失败: %w", err)
		}

		employee.UserID = user.ID
		if err := s.employeeRepo.Create(ctx, tx, employee); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newValidationError("员工工号或证件号已被注册")
			}
			return fmt.Errorf("创建员工档案失败: %w", err)
		}
		return nil
	})
	if err != nil {
		if IsValidationError(err) {
			return nil, err
		}
		log.Printf("[EmployeeService] 登记员工失败: %v", err)
		return nil, err
	}

	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]*repository.EmployeeRow, error) {
	return s.employeeRepo.List(ctx)
}

func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*repository.EmployeeRow, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// ToggleStatus 按员工 ID 启用/停用其登录账号
func (s *EmployeeService) ToggleStatus(ctx context.Context, employeeID int64) (bool, error) {
	row, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.userRepo.ToggleStatus(ctx, row.UserID, model.RoleEmployee)
}
