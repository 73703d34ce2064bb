// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: person/v1/person.proto

package personpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// PersonRole は従業員の役割です。
type PersonRole int32

const (
	PersonRole_PERSON_ROLE_UNSPECIFIED PersonRole = 0
	PersonRole_PERSON_ROLE_EMPLOYEE    PersonRole = 1
	PersonRole_PERSON_ROLE_MANAGER     PersonRole = 2
	PersonRole_PERSON_ROLE_HR_ADMIN    PersonRole = 3
)

// Enum value maps for PersonRole.
var (
	PersonRole_name = map[int32]string{
		0: "PERSON_ROLE_UNSPECIFIED",
		1: "PERSON_ROLE_EMPLOYEE",
		2: "PERSON_ROLE_MANAGER",
		3: "PERSON_ROLE_HR_ADMIN",
	}
	PersonRole_value = map[string]int32{
		"PERSON_ROLE_UNSPECIFIED": 0,
		"PERSON_ROLE_EMPLOYEE":    1,
		"PERSON_ROLE_MANAGER":     2,
		"PERSON_ROLE_HR_ADMIN":    3,
	}
)

func (x PersonRole) Enum() *PersonRole {
	p := new(PersonRole)
	*p = x
	return p
}

func (x PersonRole) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PersonRole) Descriptor() protoreflect.EnumDescriptor {
	return file_person_v1_person_proto_enumTypes[0].Descriptor()
}

func (PersonRole) Type() protoreflect.EnumType {
	return &file_person_v1_person_proto_enumTypes[0]
}

func (x PersonRole) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PersonRole.Descriptor instead.
func (PersonRole) EnumDescriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{0}
}

type Person struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FirstName   string                 `protobuf:"bytes,2,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName    string                 `protobuf:"bytes,3,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email       string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	PhoneNumber string                 `protobuf:"bytes,5,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	// YYYY-MM-DD
	DateOfBirth   string                  `protobuf:"bytes,6,opt,name=date_of_birth,json=dateOfBirth,proto3" json:"date_of_birth,omitempty"`
	Role          PersonRole              `protobuf:"varint,7,opt,name=role,proto3,enum=person.v1.PersonRole" json:"role,omitempty"`
	Active        bool                    `protobuf:"varint,8,opt,name=active,proto3" json:"active,omitempty"`
	ManagerId     *wrapperspb.StringValue `protobuf:"bytes,9,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	UserId        *wrapperspb.StringValue `protobuf:"bytes,10,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ResumePath    *wrapperspb.StringValue `protobuf:"bytes,11,opt,name=resume_path,json=resumePath,proto3" json:"resume_path,omitempty"`
	CreatedAt     *timestamppb.Timestamp  `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp  `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Person) Reset() {
	*x = Person{}
	mi := &file_person_v1_person_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Person) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Person) ProtoMessage() {}

func (x *Person) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Person.ProtoReflect.Descriptor instead.
func (*Person) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{0}
}

func (x *Person) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Person) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *Person) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *Person) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Person) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *Person) GetDateOfBirth() string {
	if x != nil {
		return x.DateOfBirth
	}
	return ""
}

func (x *Person) GetRole() PersonRole {
	if x != nil {
		return x.Role
	}
	return PersonRole_PERSON_ROLE_UNSPECIFIED
}

func (x *Person) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

func (x *Person) GetManagerId() *wrapperspb.StringValue {
	if x != nil {
		return x.ManagerId
	}
	return nil
}

func (x *Person) GetUserId() *wrapperspb.StringValue {
	if x != nil {
		return x.UserId
	}
	return nil
}

func (x *Person) GetResumePath() *wrapperspb.StringValue {
	if x != nil {
		return x.ResumePath
	}
	return nil
}

func (x *Person) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Person) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreatePersonRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	FirstName     string                  `protobuf:"bytes,1,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                  `protobuf:"bytes,2,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email         string                  `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	PhoneNumber   string                  `protobuf:"bytes,4,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	DateOfBirth   string                  `protobuf:"bytes,5,opt,name=date_of_birth,json=dateOfBirth,proto3" json:"date_of_birth,omitempty"`
	Role          PersonRole              `protobuf:"varint,6,opt,name=role,proto3,enum=person.v1.PersonRole" json:"role,omitempty"`
	ManagerId     *wrapperspb.StringValue `protobuf:"bytes,7,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	UserId        *wrapperspb.StringValue `protobuf:"bytes,8,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePersonRequest) Reset() {
	*x = CreatePersonRequest{}
	mi := &file_person_v1_person_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePersonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePersonRequest) ProtoMessage() {}

func (x *CreatePersonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePersonRequest.ProtoReflect.Descriptor instead.
func (*CreatePersonRequest) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{1}
}

func (x *CreatePersonRequest) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *CreatePersonRequest) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *CreatePersonRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreatePersonRequest) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *CreatePersonRequest) GetDateOfBirth() string {
	if x != nil {
		return x.DateOfBirth
	}
	return ""
}

func (x *CreatePersonRequest) GetRole() PersonRole {
	if x != nil {
		return x.Role
	}
	return PersonRole_PERSON_ROLE_UNSPECIFIED
}

func (x *CreatePersonRequest) GetManagerId() *wrapperspb.StringValue {
	if x != nil {
		return x.ManagerId
	}
	return nil
}

func (x *CreatePersonRequest) GetUserId() *wrapperspb.StringValue {
	if x != nil {
		return x.UserId
	}
	return nil
}

type CreatePersonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Person        *Person                `protobuf:"bytes,1,opt,name=person,proto3" json:"person,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePersonResponse) Reset() {
	*x = CreatePersonResponse{}
	mi := &file_person_v1_person_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePersonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePersonResponse) ProtoMessage() {}

func (x *CreatePersonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePersonResponse.ProtoReflect.Descriptor instead.
func (*CreatePersonResponse) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{2}
}

func (x *CreatePersonResponse) GetPerson() *Person {
	if x != nil {
		return x.Person
	}
	return nil
}

type UpdatePersonRequest struct {
	state       protoimpl.MessageState  `protogen:"open.v1"`
	Id          string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FirstName   *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName    *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email       *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	PhoneNumber *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	DateOfBirth *wrapperspb.StringValue `protobuf:"bytes,6,opt,name=date_of_birth,json=dateOfBirth,proto3" json:"date_of_birth,omitempty"`
	Role        PersonRole              `protobuf:"varint,7,opt,name=role,proto3,enum=person.v1.PersonRole" json:"role,omitempty"`
	// manager_id が空文字のときは紐付け解除を意味します。
	ManagerId     *wrapperspb.StringValue `protobuf:"bytes,8,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	UserId        *wrapperspb.StringValue `protobuf:"bytes,9,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePersonRequest) Reset() {
	*x = UpdatePersonRequest{}
	mi := &file_person_v1_person_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePersonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePersonRequest) ProtoMessage() {}

func (x *UpdatePersonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePersonRequest.ProtoReflect.Descriptor instead.
func (*UpdatePersonRequest) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{3}
}

func (x *UpdatePersonRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdatePersonRequest) GetFirstName() *wrapperspb.StringValue {
	if x != nil {
		return x.FirstName
	}
	return nil
}

func (x *UpdatePersonRequest) GetLastName() *wrapperspb.StringValue {
	if x != nil {
		return x.LastName
	}
	return nil
}

func (x *UpdatePersonRequest) GetEmail() *wrapperspb.StringValue {
	if x != nil {
		return x.Email
	}
	return nil
}

func (x *UpdatePersonRequest) GetPhoneNumber() *wrapperspb.StringValue {
	if x != nil {
		return x.PhoneNumber
	}
	return nil
}

func (x *UpdatePersonRequest) GetDateOfBirth() *wrapperspb.StringValue {
	if x != nil {
		return x.DateOfBirth
	}
	return nil
}

func (x *UpdatePersonRequest) GetRole() PersonRole {
	if x != nil {
		return x.Role
	}
	return PersonRole_PERSON_ROLE_UNSPECIFIED
}

func (x *UpdatePersonRequest) GetManagerId() *wrapperspb.StringValue {
	if x != nil {
		return x.ManagerId
	}
	return nil
}

func (x *UpdatePersonRequest) GetUserId() *wrapperspb.StringValue {
	if x != nil {
		return x.UserId
	}
	return nil
}

type UpdatePersonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Person        *Person                `protobuf:"bytes,1,opt,name=person,proto3" json:"person,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePersonResponse) Reset() {
	*x = UpdatePersonResponse{}
	mi := &file_person_v1_person_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePersonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePersonResponse) ProtoMessage() {}

func (x *UpdatePersonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePersonResponse.ProtoReflect.Descriptor instead.
func (*UpdatePersonResponse) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{4}
}

func (x *UpdatePersonResponse) GetPerson() *Person {
	if x != nil {
		return x.Person
	}
	return nil
}

type DeletePersonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeletePersonRequest) Reset() {
	*x = DeletePersonRequest{}
	mi := &file_person_v1_person_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeletePersonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeletePersonRequest) ProtoMessage() {}

func (x *DeletePersonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeletePersonRequest.ProtoReflect.Descriptor instead.
func (*DeletePersonRequest) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{5}
}

func (x *DeletePersonRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeletePersonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeletePersonResponse) Reset() {
	*x = DeletePersonResponse{}
	mi := &file_person_v1_person_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeletePersonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeletePersonResponse) ProtoMessage() {}

func (x *DeletePersonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeletePersonResponse.ProtoReflect.Descriptor instead.
func (*DeletePersonResponse) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{6}
}

type GetPersonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPersonRequest) Reset() {
	*x = GetPersonRequest{}
	mi := &file_person_v1_person_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPersonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPersonRequest) ProtoMessage() {}

func (x *GetPersonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPersonRequest.ProtoReflect.Descriptor instead.
func (*GetPersonRequest) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{7}
}

func (x *GetPersonRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPersonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Person        *Person                `protobuf:"bytes,1,opt,name=person,proto3" json:"person,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPersonResponse) Reset() {
	*x = GetPersonResponse{}
	mi := &file_person_v1_person_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPersonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPersonResponse) ProtoMessage() {}

func (x *GetPersonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPersonResponse.ProtoReflect.Descriptor instead.
func (*GetPersonResponse) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{8}
}

func (x *GetPersonResponse) GetPerson() *Person {
	if x != nil {
		return x.Person
	}
	return nil
}

type GetOwnPersonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOwnPersonRequest) Reset() {
	*x = GetOwnPersonRequest{}
	mi := &file_person_v1_person_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOwnPersonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOwnPersonRequest) ProtoMessage() {}

func (x *GetOwnPersonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOwnPersonRequest.ProtoReflect.Descriptor instead.
func (*GetOwnPersonRequest) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{9}
}

type GetOwnPersonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Person        *Person                `protobuf:"bytes,1,opt,name=person,proto3" json:"person,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOwnPersonResponse) Reset() {
	*x = GetOwnPersonResponse{}
	mi := &file_person_v1_person_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOwnPersonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOwnPersonResponse) ProtoMessage() {}

func (x *GetOwnPersonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOwnPersonResponse.ProtoReflect.Descriptor instead.
func (*GetOwnPersonResponse) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{10}
}

func (x *GetOwnPersonResponse) GetPerson() *Person {
	if x != nil {
		return x.Person
	}
	return nil
}

type ListPersonsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageSize      int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPersonsRequest) Reset() {
	*x = ListPersonsRequest{}
	mi := &file_person_v1_person_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPersonsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPersonsRequest) ProtoMessage() {}

func (x *ListPersonsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPersonsRequest.ProtoReflect.Descriptor instead.
func (*ListPersonsRequest) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{11}
}

func (x *ListPersonsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListPersonsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListPersonsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Persons       []*Person              `protobuf:"bytes,1,rep,name=persons,proto3" json:"persons,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPersonsResponse) Reset() {
	*x = ListPersonsResponse{}
	mi := &file_person_v1_person_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPersonsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPersonsResponse) ProtoMessage() {}

func (x *ListPersonsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPersonsResponse.ProtoReflect.Descriptor instead.
func (*ListPersonsResponse) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{12}
}

func (x *ListPersonsResponse) GetPersons() []*Person {
	if x != nil {
		return x.Persons
	}
	return nil
}

func (x *ListPersonsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type AttachResumeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PersonId      string                 `protobuf:"bytes,1,opt,name=person_id,json=personId,proto3" json:"person_id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachResumeRequest) Reset() {
	*x = AttachResumeRequest{}
	mi := &file_person_v1_person_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachResumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachResumeRequest) ProtoMessage() {}

func (x *AttachResumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachResumeRequest.ProtoReflect.Descriptor instead.
func (*AttachResumeRequest) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{13}
}

func (x *AttachResumeRequest) GetPersonId() string {
	if x != nil {
		return x.PersonId
	}
	return ""
}

func (x *AttachResumeRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *AttachResumeRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type AttachResumeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Person        *Person                `protobuf:"bytes,1,opt,name=person,proto3" json:"person,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachResumeResponse) Reset() {
	*x = AttachResumeResponse{}
	mi := &file_person_v1_person_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachResumeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachResumeResponse) ProtoMessage() {}

func (x *AttachResumeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_person_v1_person_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachResumeResponse.ProtoReflect.Descriptor instead.
func (*AttachResumeResponse) Descriptor() ([]byte, []int) {
	return file_person_v1_person_proto_rawDescGZIP(), []int{14}
}

func (x *AttachResumeResponse) GetPerson() *Person {
	if x != nil {
		return x.Person
	}
	return nil
}

var File_person_v1_person_proto protoreflect.FileDescriptor

const file_person_v1_person_proto_rawDesc = "" +
	"\n" +
	"\x16person/v1/person.proto\x12\tperson.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\x9d\x04\n" +
	"\x06Person\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"first_name\x18\x02 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x03 \x01(\tR\blastName\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12!\n" +
	"\fphone_number\x18\x05 \x01(\tR\vphoneNumber\x12\"\n" +
	"\rdate_of_birth\x18\x06 \x01(\tR\vdateOfBirth\x12)\n" +
	"\x04role\x18\a \x01(\x0e2\x15.person.v1.PersonRoleR\x04role\x12\x16\n" +
	"\x06active\x18\b \x01(\bR\x06active\x12;\n" +
	"\n" +
	"manager_id\x18\t \x01(\v2\x1c.google.protobuf.StringValueR\tmanagerId\x125\n" +
	"\auser_id\x18\n" +
	" \x01(\v2\x1c.google.protobuf.StringValueR\x06userId\x12=\n" +
	"\vresume_path\x18\v \x01(\v2\x1c.google.protobuf.StringValueR\n" +
	"resumePath\x129\n" +
	"\n" +
	"created_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xcd\x02\n" +
	"\x13CreatePersonRequest\x12\x1d\n" +
	"\n" +
	"first_name\x18\x01 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x02 \x01(\tR\blastName\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12!\n" +
	"\fphone_number\x18\x04 \x01(\tR\vphoneNumber\x12\"\n" +
	"\rdate_of_birth\x18\x05 \x01(\tR\vdateOfBirth\x12)\n" +
	"\x04role\x18\x06 \x01(\x0e2\x15.person.v1.PersonRoleR\x04role\x12;\n" +
	"\n" +
	"manager_id\x18\a \x01(\v2\x1c.google.protobuf.StringValueR\tmanagerId\x125\n" +
	"\auser_id\x18\b \x01(\v2\x1c.google.protobuf.StringValueR\x06userId\"A\n" +
	"\x14CreatePersonResponse\x12)\n" +
	"\x06person\x18\x01 \x01(\v2\x11.person.v1.PersonR\x06person\"\xf3\x03\n" +
	"\x13UpdatePersonRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12;\n" +
	"\n" +
	"first_name\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\tfirstName\x129\n" +
	"\tlast_name\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\blastName\x122\n" +
	"\x05email\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\x05email\x12?\n" +
	"\fphone_number\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\vphoneNumber\x12@\n" +
	"\rdate_of_birth\x18\x06 \x01(\v2\x1c.google.protobuf.StringValueR\vdateOfBirth\x12)\n" +
	"\x04role\x18\a \x01(\x0e2\x15.person.v1.PersonRoleR\x04role\x12;\n" +
	"\n" +
	"manager_id\x18\b \x01(\v2\x1c.google.protobuf.StringValueR\tmanagerId\x125\n" +
	"\auser_id\x18\t \x01(\v2\x1c.google.protobuf.StringValueR\x06userId\"A\n" +
	"\x14UpdatePersonResponse\x12)\n" +
	"\x06person\x18\x01 \x01(\v2\x11.person.v1.PersonR\x06person\"%\n" +
	"\x13DeletePersonRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x16\n" +
	"\x14DeletePersonResponse\"\"\n" +
	"\x10GetPersonRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\">\n" +
	"\x11GetPersonResponse\x12)\n" +
	"\x06person\x18\x01 \x01(\v2\x11.person.v1.PersonR\x06person\"\x15\n" +
	"\x13GetOwnPersonRequest\"A\n" +
	"\x14GetOwnPersonResponse\x12)\n" +
	"\x06person\x18\x01 \x01(\v2\x11.person.v1.PersonR\x06person\"P\n" +
	"\x12ListPersonsRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\"j\n" +
	"\x13ListPersonsResponse\x12+\n" +
	"\apersons\x18\x01 \x03(\v2\x11.person.v1.PersonR\apersons\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"i\n" +
	"\x13AttachResumeRequest\x12\x1b\n" +
	"\tperson_id\x18\x01 \x01(\tR\bpersonId\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"A\n" +
	"\x14AttachResumeResponse\x12)\n" +
	"\x06person\x18\x01 \x01(\v2\x11.person.v1.PersonR\x06person*v\n" +
	"\n" +
	"PersonRole\x12\x1b\n" +
	"\x17PERSON_ROLE_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14PERSON_ROLE_EMPLOYEE\x10\x01\x12\x17\n" +
	"\x13PERSON_ROLE_MANAGER\x10\x02\x12\x18\n" +
	"\x14PERSON_ROLE_HR_ADMIN\x10\x032\xba\x04\n" +
	"\rPersonService\x12O\n" +
	"\fCreatePerson\x12\x1e.person.v1.CreatePersonRequest\x1a\x1f.person.v1.CreatePersonResponse\x12O\n" +
	"\fUpdatePerson\x12\x1e.person.v1.UpdatePersonRequest\x1a\x1f.person.v1.UpdatePersonResponse\x12O\n" +
	"\fDeletePerson\x12\x1e.person.v1.DeletePersonRequest\x1a\x1f.person.v1.DeletePersonResponse\x12F\n" +
	"\tGetPerson\x12\x1b.person.v1.GetPersonRequest\x1a\x1c.person.v1.GetPersonResponse\x12O\n" +
	"\fGetOwnPerson\x12\x1e.person.v1.GetOwnPersonRequest\x1a\x1f.person.v1.GetOwnPersonResponse\x12L\n" +
	"\vListPersons\x12\x1d.person.v1.ListPersonsRequest\x1a\x1e.person.v1.ListPersonsResponse\x12O\n" +
	"\fAttachResume\x12\x1e.person.v1.AttachResumeRequest\x1a\x1f.person.v1.AttachResumeResponseBSZQgithub.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/person/v1;personpbb\x06proto3"

var (
	file_person_v1_person_proto_rawDescOnce sync.Once
	file_person_v1_person_proto_rawDescData []byte
)

func file_person_v1_person_proto_rawDescGZIP() []byte {
	file_person_v1_person_proto_rawDescOnce.Do(func() {
		file_person_v1_person_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_person_v1_person_proto_rawDesc), len(file_person_v1_person_proto_rawDesc)))
	})
	return file_person_v1_person_proto_rawDescData
}

var file_person_v1_person_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_person_v1_person_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_person_v1_person_proto_goTypes = []any{
	(PersonRole)(0),                // 0: person.v1.PersonRole
	(*Person)(nil),                 // 1: person.v1.Person
	(*CreatePersonRequest)(nil),    // 2: person.v1.CreatePersonRequest
	(*CreatePersonResponse)(nil),   // 3: person.v1.CreatePersonResponse
	(*UpdatePersonRequest)(nil),    // 4: person.v1.UpdatePersonRequest
	(*UpdatePersonResponse)(nil),   // 5: person.v1.UpdatePersonResponse
	(*DeletePersonRequest)(nil),    // 6: person.v1.DeletePersonRequest
	(*DeletePersonResponse)(nil),   // 7: person.v1.DeletePersonResponse
	(*GetPersonRequest)(nil),       // 8: person.v1.GetPersonRequest
	(*GetPersonResponse)(nil),      // 9: person.v1.GetPersonResponse
	(*GetOwnPersonRequest)(nil),    // 10: person.v1.GetOwnPersonRequest
	(*GetOwnPersonResponse)(nil),   // 11: person.v1.GetOwnPersonResponse
	(*ListPersonsRequest)(nil),     // 12: person.v1.ListPersonsRequest
	(*ListPersonsResponse)(nil),    // 13: person.v1.ListPersonsResponse
	(*AttachResumeRequest)(nil),    // 14: person.v1.AttachResumeRequest
	(*AttachResumeResponse)(nil),   // 15: person.v1.AttachResumeResponse
	(*wrapperspb.StringValue)(nil), // 16: google.protobuf.StringValue
	(*timestamppb.Timestamp)(nil),  // 17: google.protobuf.Timestamp
}
var file_person_v1_person_proto_depIdxs = []int32{
	0,  // 0: person.v1.Person.role:type_name -> person.v1.PersonRole
	16, // 1: person.v1.Person.manager_id:type_name -> google.protobuf.StringValue
	16, // 2: person.v1.Person.user_id:type_name -> google.protobuf.StringValue
	16, // 3: person.v1.Person.resume_path:type_name -> google.protobuf.StringValue
	17, // 4: person.v1.Person.created_at:type_name -> google.protobuf.Timestamp
	17, // 5: person.v1.Person.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 6: person.v1.CreatePersonRequest.role:type_name -> person.v1.PersonRole
	16, // 7: person.v1.CreatePersonRequest.manager_id:type_name -> google.protobuf.StringValue
	16, // 8: person.v1.CreatePersonRequest.user_id:type_name -> google.protobuf.StringValue
	1,  // 9: person.v1.CreatePersonResponse.person:type_name -> person.v1.Person
	16, // 10: person.v1.UpdatePersonRequest.first_name:type_name -> google.protobuf.StringValue
	16, // 11: person.v1.UpdatePersonRequest.last_name:type_name -> google.protobuf.StringValue
	16, // 12: person.v1.UpdatePersonRequest.email:type_name -> google.protobuf.StringValue
	16, // 13: person.v1.UpdatePersonRequest.phone_number:type_name -> google.protobuf.StringValue
	16, // 14: person.v1.UpdatePersonRequest.date_of_birth:type_name -> google.protobuf.StringValue
	0,  // 15: person.v1.UpdatePersonRequest.role:type_name -> person.v1.PersonRole
	16, // 16: person.v1.UpdatePersonRequest.manager_id:type_name -> google.protobuf.StringValue
	16, // 17: person.v1.UpdatePersonRequest.user_id:type_name -> google.protobuf.StringValue
	1,  // 18: person.v1.UpdatePersonResponse.person:type_name -> person.v1.Person
	1,  // 19: person.v1.GetPersonResponse.person:type_name -> person.v1.Person
	1,  // 20: person.v1.GetOwnPersonResponse.person:type_name -> person.v1.Person
	1,  // 21: person.v1.ListPersonsResponse.persons:type_name -> person.v1.Person
	1,  // 22: person.v1.AttachResumeResponse.person:type_name -> person.v1.Person
	2,  // 23: person.v1.PersonService.CreatePerson:input_type -> person.v1.CreatePersonRequest
	4,  // 24: person.v1.PersonService.UpdatePerson:input_type -> person.v1.UpdatePersonRequest
	6,  // 25: person.v1.PersonService.DeletePerson:input_type -> person.v1.DeletePersonRequest
	8,  // 26: person.v1.PersonService.GetPerson:input_type -> person.v1.GetPersonRequest
	10, // 27: person.v1.PersonService.GetOwnPerson:input_type -> person.v1.GetOwnPersonRequest
	12, // 28: person.v1.PersonService.ListPersons:input_type -> person.v1.ListPersonsRequest
	14, // 29: person.v1.PersonService.AttachResume:input_type -> person.v1.AttachResumeRequest
	3,  // 30: person.v1.PersonService.CreatePerson:output_type -> person.v1.CreatePersonResponse
	5,  // 31: person.v1.PersonService.UpdatePerson:output_type -> person.v1.UpdatePersonResponse
	7,  // 32: person.v1.PersonService.DeletePerson:output_type -> person.v1.DeletePersonResponse
	9,  // 33: person.v1.PersonService.GetPerson:output_type -> person.v1.GetPersonResponse
	11, // 34: person.v1.PersonService.GetOwnPerson:output_type -> person.v1.GetOwnPersonResponse
	13, // 35: person.v1.PersonService.ListPersons:output_type -> person.v1.ListPersonsResponse
	15, // 36: person.v1.PersonService.AttachResume:output_type -> person.v1.AttachResumeResponse
	30, // [30:37] is the sub-list for method output_type
	23, // [23:30] is the sub-list for method input_type
	23, // [23:23] is the sub-list for extension type_name
	23, // [23:23] is the sub-list for extension extendee
	0,  // [0:23] is the sub-list for field type_name
}

func init() { file_person_v1_person_proto_init() }
func file_person_v1_person_proto_init() {
	if File_person_v1_person_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_person_v1_person_proto_rawDesc), len(file_person_v1_person_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_person_v1_person_proto_goTypes,
		DependencyIndexes: file_person_v1_person_proto_depIdxs,
		EnumInfos:         file_person_v1_person_proto_enumTypes,
		MessageInfos:      file_person_v1_person_proto_msgTypes,
	}.Build()
	File_person_v1_person_proto = out.File
	file_person_v1_person_proto_goTypes = nil
	file_person_v1_person_proto_depIdxs = nil
}
